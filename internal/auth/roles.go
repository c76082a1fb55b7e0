package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fit-training-service/internal/domain"
)

// RequireTrainee ensures a trainee is authenticated.
func RequireTrainee() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.SubjectType != domain.SubjectTypeTrainee || principal.Trainee == nil {
			return fiber.NewError(http.StatusForbidden, "trainee required")
		}
		return c.Next()
	}
}

// RequireAdmin ensures the caller holds an administrator token.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.SubjectType != domain.SubjectTypeAdmin {
			return fiber.NewError(http.StatusForbidden, "administrator required")
		}
		return c.Next()
	}
}
