package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fit-training-service/internal/api/dto"
	"github.com/spec-kit/fit-training-service/internal/service"
)

// AdminHandler exposes the admin review surface.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: adminService}
}

// Search handles GET /admin/trainees?q=.
func (h *AdminHandler) Search(c *fiber.Ctx) error {
	trainees := h.admin.Search(c.Context(), c.Query("q"))
	out := make([]dto.TraineeResponse, 0, len(trainees))
	for i := range trainees {
		out = append(out, dto.NewTraineeResponse(&trainees[i]))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"trainees": out}})
}

// RecordFitTest handles POST /admin/trainees/:id/fit-test.
func (h *AdminHandler) RecordFitTest(c *fiber.Ctx) error {
	var req dto.FitTestRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.MaskType == "" {
		return fiber.NewError(http.StatusBadRequest, "mask_type required")
	}

	updated, err := h.admin.RecordFitTest(c.Context(), c.Params("id"), req.MaskType)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"trainee": dto.NewTraineeResponse(updated)},
	})
}

// Export handles GET /admin/trainees/export.
func (h *AdminHandler) Export(c *fiber.Ctx) error {
	path, err := h.admin.ExportReport(c.Context())
	if err != nil {
		return err
	}
	return c.SendFile(path)
}
