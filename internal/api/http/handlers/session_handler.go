package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fit-training-service/internal/api/dto"
	"github.com/spec-kit/fit-training-service/internal/auth"
	"github.com/spec-kit/fit-training-service/internal/service"
)

// SessionHandler exposes sign-in and the trainee dashboard.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler constructs handler.
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Login handles POST /auth/login.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.StaffID == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "staff_id and password required")
	}

	result, err := h.sessions.Login(c.Context(), req.StaffID, req.Password)
	if err != nil {
		return err
	}

	data := fiber.Map{
		"subject": result.Subject,
		"screen":  result.Screen,
		"auth":    dto.AuthResponse{Token: result.Token, ExpiresAt: result.ExpiresAt},
	}
	if result.Trainee != nil {
		data["trainee"] = dto.NewTraineeResponse(result.Trainee)
	}
	return c.JSON(fiber.Map{"data": data})
}

// Dashboard handles GET /me/dashboard.
func (h *SessionHandler) Dashboard(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Trainee == nil {
		return fiber.NewError(http.StatusForbidden, "trainee required")
	}

	dash := h.sessions.DashboardFor(principal.Trainee)
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"trainee":           dto.NewTraineeResponse(principal.Trainee),
			"status":            dash.Status,
			"stages":            dash.Stages,
			"permitted_screens": dash.Permitted,
		},
	})
}
