package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/fit-training-service/internal/auth"
	"github.com/spec-kit/fit-training-service/internal/domain"
	"github.com/spec-kit/fit-training-service/internal/events"
	"github.com/spec-kit/fit-training-service/internal/registration"
	"github.com/spec-kit/fit-training-service/internal/repository"
	apperrors "github.com/spec-kit/fit-training-service/pkg/util"
)

// RegistrationService runs the four-step wizard. Drafts live in memory only;
// nothing reaches the store until the final step validates, so canceling a
// draft never leaves a partial commit behind.
type RegistrationService struct {
	mu         sync.Mutex
	drafts     map[string]*registration.Draft
	store      *repository.TraineeStore
	dispatcher events.Dispatcher
	bcryptCost int
	logger     *zap.Logger
}

// NewRegistrationService builds the service.
func NewRegistrationService(store *repository.TraineeStore, dispatcher events.Dispatcher, bcryptCost int, logger *zap.Logger) *RegistrationService {
	return &RegistrationService{
		drafts:     make(map[string]*registration.Draft),
		store:      store,
		dispatcher: dispatcher,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// StartDraft opens a new wizard draft.
func (s *RegistrationService) StartDraft() *registration.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := registration.NewDraft(uuid.NewString())
	s.drafts[draft.ID] = draft
	return draft
}

// Draft returns the draft with the given id.
func (s *RegistrationService) Draft(draftID string) (*registration.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[draftID]
	if !ok {
		return nil, apperrors.NewNotFound("draft", nil)
	}
	return draft, nil
}

// StepResult reports the outcome of one step submission. FieldErrors is
// non-empty when the step did not advance; Trainee is set once the final step
// committed the record.
type StepResult struct {
	FieldErrors map[string]string
	Draft       *registration.Draft
	Trainee     *domain.Trainee
}

// SubmitStep merges the submitted fields into the draft and validates only
// the current step. Advancing past the final step finalizes the record and
// inserts it into the store with status REGISTERED.
func (s *RegistrationService) SubmitStep(ctx context.Context, draftID string, step int, fields registration.Fields) (*StepResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[draftID]
	if !ok {
		return nil, apperrors.NewNotFound("draft", nil)
	}
	if step != draft.Step {
		return nil, apperrors.NewConflict("step out of sequence", map[string]any{"current_step": draft.Step})
	}

	draft.Apply(fields)

	if errs := registration.ValidateStep(step, draft); len(errs) > 0 {
		return &StepResult{FieldErrors: errs, Draft: draft}, nil
	}

	if step < registration.LastStep {
		draft.Step++
		return &StepResult{Draft: draft}, nil
	}

	trainee, err := s.finalize(ctx, draft)
	if err != nil {
		return nil, err
	}
	delete(s.drafts, draftID)
	return &StepResult{Draft: draft, Trainee: trainee}, nil
}

// Back moves the wizard one step backwards without discarding entered data.
func (s *RegistrationService) Back(draftID string) (*registration.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[draftID]
	if !ok {
		return nil, apperrors.NewNotFound("draft", nil)
	}
	draft.Back()
	return draft, nil
}

// Cancel discards the entire draft.
func (s *RegistrationService) Cancel(draftID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, draftID)
}

func (s *RegistrationService) finalize(ctx context.Context, draft *registration.Draft) (*domain.Trainee, error) {
	hash, err := auth.HashPassword(draft.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	trainee := domain.Trainee{
		ID:           uuid.NewString(),
		StaffID:      draft.StaffID,
		PasswordHash: hash,
		NationalID:   draft.NationalID,
		FullName:     draft.FullName,
		DateOfBirth:  draft.DateOfBirth,
		Nationality:  draft.Nationality,
		Department:   draft.Department,
		JobCategory:  domain.JobCategory(draft.JobCategory),
		SubCategory:  draft.SubCategory,
		Gender:       domain.Gender(draft.Gender),
		Email:        draft.Email,
		Mobile:       draft.Mobile,
		MaskType:     draft.MaskType,
		Status:       domain.StatusRegistered,
	}

	if err := s.store.Insert(ctx, trainee); err != nil {
		if errors.Is(err, repository.ErrDuplicateStaffID) {
			return nil, apperrors.NewConflict("staff id already registered", map[string]any{"staff_id": draft.StaffID})
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventTraineeRegistered,
		TraineeID: trainee.ID,
		Timestamp: time.Now(),
		Payload: events.TraineeRegisteredPayload{
			StaffID:     trainee.StaffID,
			FullName:    trainee.FullName,
			JobCategory: trainee.JobCategory,
			Department:  trainee.Department,
		},
	})

	s.logger.Info("trainee registered",
		zap.String("trainee_id", trainee.ID),
		zap.String("staff_id", trainee.StaffID))
	return &trainee, nil
}

func (s *RegistrationService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish event", zap.String("type", string(event.Type)), zap.Error(err))
	}
}
