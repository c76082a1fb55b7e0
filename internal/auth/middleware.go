package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fit-training-service/internal/domain"
	"github.com/spec-kit/fit-training-service/internal/repository"
	apperrors "github.com/spec-kit/fit-training-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller. Admin principals carry no
// trainee record; the admin sign-in is a reserved credential pair, not a
// stored account.
type Principal struct {
	SubjectType domain.SubjectType
	Trainee     *domain.Trainee
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens *TokenManager
	store  *repository.TraineeStore
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, store *repository.TraineeStore) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, store: store}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	principal := &Principal{SubjectType: claims.Subject}

	switch claims.Subject {
	case domain.SubjectTypeTrainee:
		trainee, err := m.store.FindByID(c.Context(), claims.SubjectID)
		if err != nil {
			if errors.Is(err, repository.ErrTraineeNotFound) {
				return apperrors.NewUnauthorized("trainee not found")
			}
			return apperrors.MapError(err)
		}
		principal.Trainee = trainee
	case domain.SubjectTypeAdmin:
	default:
		return apperrors.NewUnauthorized("unknown subject")
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
