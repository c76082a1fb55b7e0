package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fit-training-service/internal/api/dto"
	"github.com/spec-kit/fit-training-service/internal/service"
)

// RegistrationHandler exposes the four-step wizard.
type RegistrationHandler struct {
	registration *service.RegistrationService
}

// NewRegistrationHandler constructs handler.
func NewRegistrationHandler(registrationService *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registration: registrationService}
}

// Start handles POST /registration.
func (h *RegistrationHandler) Start(c *fiber.Ctx) error {
	draft := h.registration.StartDraft()
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.DraftResponse{DraftID: draft.ID, Step: draft.Step},
	})
}

// SubmitStep handles PUT /registration/:id/steps/:step.
func (h *RegistrationHandler) SubmitStep(c *fiber.Ctx) error {
	step, err := c.ParamsInt("step")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid step")
	}

	var req dto.StepRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.registration.SubmitStep(c.Context(), c.Params("id"), step, req.Fields())
	if err != nil {
		return err
	}

	if len(result.FieldErrors) > 0 {
		return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{
			"data": fiber.Map{
				"step":         result.Draft.Step,
				"field_errors": result.FieldErrors,
			},
		})
	}

	if result.Trainee != nil {
		return c.Status(http.StatusCreated).JSON(fiber.Map{
			"data": fiber.Map{"trainee": dto.NewTraineeResponse(result.Trainee)},
		})
	}

	return c.JSON(fiber.Map{
		"data": dto.DraftResponse{DraftID: result.Draft.ID, Step: result.Draft.Step},
	})
}

// Back handles POST /registration/:id/back.
func (h *RegistrationHandler) Back(c *fiber.Ctx) error {
	draft, err := h.registration.Back(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": dto.DraftResponse{DraftID: draft.ID, Step: draft.Step},
	})
}

// Cancel handles DELETE /registration/:id.
func (h *RegistrationHandler) Cancel(c *fiber.Ctx) error {
	h.registration.Cancel(c.Params("id"))
	return c.SendStatus(http.StatusNoContent)
}
