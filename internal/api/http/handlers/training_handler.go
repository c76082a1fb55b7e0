package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fit-training-service/internal/api/dto"
	"github.com/spec-kit/fit-training-service/internal/auth"
	"github.com/spec-kit/fit-training-service/internal/service"
)

// TrainingHandler exposes the video and quiz stages.
type TrainingHandler struct {
	training *service.TrainingService
}

// NewTrainingHandler constructs handler.
func NewTrainingHandler(trainingService *service.TrainingService) *TrainingHandler {
	return &TrainingHandler{training: trainingService}
}

// StartVideo handles POST /me/video/start.
func (h *TrainingHandler) StartVideo(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Trainee == nil {
		return fiber.NewError(http.StatusForbidden, "trainee required")
	}

	var req dto.VideoStartRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.training.StartVideo(principal.Trainee.ID, req.DurationSeconds); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// VideoProgress handles POST /me/video/progress.
func (h *TrainingHandler) VideoProgress(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Trainee == nil {
		return fiber.NewError(http.StatusForbidden, "trainee required")
	}

	var req dto.VideoProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	allowed, err := h.training.ReportProgress(principal.Trainee.ID, req.PositionSeconds)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": dto.VideoProgressResponse{AllowedPositionSeconds: allowed},
	})
}

// CompleteVideo handles POST /me/video/complete.
func (h *TrainingHandler) CompleteVideo(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Trainee == nil {
		return fiber.NewError(http.StatusForbidden, "trainee required")
	}

	updated, err := h.training.CompleteVideo(c.Context(), principal.Trainee)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"trainee": dto.NewTraineeResponse(updated)},
	})
}

// Questions handles GET /me/quiz. Correct indices are stripped before the
// bank leaves the service.
func (h *TrainingHandler) Questions(c *fiber.Ctx) error {
	bank := h.training.Questions()
	out := make([]dto.QuizQuestionResponse, 0, len(bank))
	for _, q := range bank {
		out = append(out, dto.QuizQuestionResponse{ID: q.ID, Text: q.Text, Options: q.Options})
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"questions": out}})
}

// SubmitQuiz handles POST /me/quiz.
func (h *TrainingHandler) SubmitQuiz(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Trainee == nil {
		return fiber.NewError(http.StatusForbidden, "trainee required")
	}

	var req dto.QuizSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	result, updated, err := h.training.SubmitQuiz(c.Context(), principal.Trainee, req.AnswerMap())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"result":  dto.QuizResultResponse{Score: result.Score, Passed: result.Passed},
			"trainee": dto.NewTraineeResponse(updated),
		},
	})
}

// RetryQuiz handles POST /me/quiz/retry.
func (h *TrainingHandler) RetryQuiz(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Trainee == nil {
		return fiber.NewError(http.StatusForbidden, "trainee required")
	}
	h.training.RetryQuiz(principal.Trainee.ID)
	return c.SendStatus(http.StatusNoContent)
}
