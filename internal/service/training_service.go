package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/fit-training-service/internal/domain"
	"github.com/spec-kit/fit-training-service/internal/events"
	"github.com/spec-kit/fit-training-service/internal/quiz"
	"github.com/spec-kit/fit-training-service/internal/repository"
	"github.com/spec-kit/fit-training-service/internal/video"
	apperrors "github.com/spec-kit/fit-training-service/pkg/util"
)

// TrainingService drives the video and quiz stages. Per-trainee guard and
// answer state is in-memory only; navigating away discards it without ever
// partially committing to the store.
type TrainingService struct {
	mu         sync.Mutex
	guards     map[string]*video.Guard
	answers    map[string]map[int]int
	evaluator  *quiz.Evaluator
	store      *repository.TraineeStore
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewTrainingService builds the service over the standard question bank.
func NewTrainingService(store *repository.TraineeStore, dispatcher events.Dispatcher, logger *zap.Logger) *TrainingService {
	return &TrainingService{
		guards:     make(map[string]*video.Guard),
		answers:    make(map[string]map[int]int),
		evaluator:  quiz.NewEvaluator(domain.Questions()),
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// StartVideo opens a fresh viewing session for the trainee.
func (s *TrainingService) StartVideo(traineeID string, duration float64) error {
	if duration <= 0 {
		return apperrors.NewValidationError("duration must be positive", nil)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guards[traineeID] = video.NewGuard(duration)
	return nil
}

// ReportProgress feeds one playback callback through the guard and returns
// the position the player must hold.
func (s *TrainingService) ReportProgress(traineeID string, position float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guard, ok := s.guards[traineeID]
	if !ok {
		return 0, apperrors.NewValidationError("video session not started", nil)
	}
	return guard.Observe(position), nil
}

// CompleteVideo fires the video-completed transition. It is accepted only
// when guarded playback has reached the end; firing from any status other
// than REGISTERED is a silent no-op.
func (s *TrainingService) CompleteVideo(ctx context.Context, trainee *domain.Trainee) (*domain.Trainee, error) {
	s.mu.Lock()
	guard, ok := s.guards[trainee.ID]
	s.mu.Unlock()
	if !ok || !guard.Completed() {
		return nil, apperrors.NewValidationError("video has not been watched to the end", nil)
	}

	updated, err := s.advance(ctx, trainee, domain.EventVideoCompleted)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.guards, trainee.ID)
	s.mu.Unlock()
	return updated, nil
}

// Questions returns the quiz bank for presentation.
func (s *TrainingService) Questions() []domain.Question {
	return s.evaluator.Questions()
}

// SubmitQuiz scores a complete answer set. The quiz stage must be unlocked;
// exactly 100% fires the quiz-passed transition, anything lower leaves the
// status untouched and the selections stored for inspection until retried.
func (s *TrainingService) SubmitQuiz(ctx context.Context, trainee *domain.Trainee, answers map[int]int) (quiz.Result, *domain.Trainee, error) {
	if !domain.DeriveStages(trainee.Status).Quiz.Unlocked {
		return quiz.Result{}, nil, apperrors.NewForbidden("quiz stage is locked")
	}
	if !s.evaluator.Complete(answers) {
		return quiz.Result{}, nil, apperrors.NewValidationError("every question must be answered", nil)
	}

	s.mu.Lock()
	s.answers[trainee.ID] = answers
	s.mu.Unlock()

	result := s.evaluator.Score(answers)
	if !result.Passed {
		return result, trainee, nil
	}

	updated, err := s.advance(ctx, trainee, domain.EventQuizPassed)
	if err != nil {
		return quiz.Result{}, nil, err
	}
	return result, updated, nil
}

// RetryQuiz clears every stored selection, returning the attempt to the
// unanswered state. Attempts are not counted and retries are never locked
// out.
func (s *TrainingService) RetryQuiz(traineeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.answers, traineeID)
}

// Answers returns the stored selections for the trainee's current attempt.
func (s *TrainingService) Answers(traineeID string) map[int]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.answers[traineeID]
	if !ok {
		return map[int]int{}
	}
	out := make(map[int]int, len(stored))
	for k, v := range stored {
		out[k] = v
	}
	return out
}

// advance applies the progression event and persists the new status. An event
// invalid for the current status is a silent no-op: the record is returned
// unchanged.
func (s *TrainingService) advance(ctx context.Context, trainee *domain.Trainee, event domain.ProgressionEvent) (*domain.Trainee, error) {
	next, fired := domain.Advance(trainee.Status, event)
	if !fired {
		return trainee, nil
	}

	updated, err := s.store.Update(ctx, trainee.ID, repository.TraineeUpdate{Status: &next})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventStatusAdvanced,
		TraineeID: trainee.ID,
		Timestamp: time.Now(),
		Payload: events.StatusAdvancedPayload{
			OldStatus: trainee.Status,
			NewStatus: next,
			Trigger:   event,
		},
	})
	return updated, nil
}

func (s *TrainingService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish event", zap.String("type", string(event.Type)), zap.Error(err))
	}
}
