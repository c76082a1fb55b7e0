package service

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/fit-training-service/internal/config"
	"github.com/spec-kit/fit-training-service/internal/domain"
	"github.com/spec-kit/fit-training-service/internal/events"
	"github.com/spec-kit/fit-training-service/internal/export"
	"github.com/spec-kit/fit-training-service/internal/repository"
	apperrors "github.com/spec-kit/fit-training-service/pkg/util"
)

// AdminService backs the admin review surface: trainee search, fit-test
// certification and the spreadsheet export. It holds no private copy of the
// collection; every operation reads the store directly.
type AdminService struct {
	store      *repository.TraineeStore
	dispatcher events.Dispatcher
	exportPath string
	logger     *zap.Logger
}

// NewAdminService builds the service.
func NewAdminService(store *repository.TraineeStore, dispatcher events.Dispatcher, cfg config.ExportConfig, logger *zap.Logger) *AdminService {
	return &AdminService{
		store:      store,
		dispatcher: dispatcher,
		exportPath: filepath.Join(cfg.Dir, cfg.Filename),
		logger:     logger,
	}
}

// Search filters the full collection: case-insensitive substring match on
// full name, or substring match on staff id. An empty query returns everyone.
func (s *AdminService) Search(ctx context.Context, query string) []domain.Trainee {
	all := s.store.List(ctx)
	if query == "" {
		return all
	}

	needle := strings.ToLower(query)
	out := make([]domain.Trainee, 0, len(all))
	for _, t := range all {
		if strings.Contains(t.StaffID, query) || strings.Contains(strings.ToLower(t.FullName), needle) {
			out = append(out, t)
		}
	}
	return out
}

// RecordFitTest certifies a trainee: the target must currently be
// QUIZ_PASSED, and the confirmed mask may differ from the stated preference
// as long as it comes from the catalog. On success the record moves to
// FIT_TESTED with the confirmed mask.
func (s *AdminService) RecordFitTest(ctx context.Context, traineeID, maskName string) (*domain.Trainee, error) {
	if !domain.IsCatalogMask(maskName) {
		return nil, apperrors.NewValidationError("unknown mask type", map[string]any{"mask_type": maskName})
	}

	trainee, err := s.store.FindByID(ctx, traineeID)
	if err != nil {
		return nil, apperrors.NewNotFound("trainee", map[string]any{"id": traineeID})
	}

	next, fired := domain.Advance(trainee.Status, domain.EventFitTestRecorded)
	if !fired {
		return nil, apperrors.NewConflict("trainee is not awaiting a fit test", map[string]any{"status": trainee.Status})
	}

	updated, err := s.store.Update(ctx, traineeID, repository.TraineeUpdate{Status: &next, MaskType: &maskName})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventFitTestRecorded,
		TraineeID: traineeID,
		Timestamp: time.Now(),
		Payload: events.FitTestRecordedPayload{
			StaffID:       updated.StaffID,
			CertifiedMask: maskName,
		},
	})

	s.logger.Info("fit test recorded",
		zap.String("trainee_id", traineeID),
		zap.String("mask", maskName))
	return updated, nil
}

// ExportReport writes the spreadsheet artifact to its fixed filename and
// returns the path.
func (s *AdminService) ExportReport(ctx context.Context) (string, error) {
	if err := export.WriteReport(s.store.List(ctx), s.exportPath); err != nil {
		return "", err
	}
	return s.exportPath, nil
}

func (s *AdminService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish event", zap.String("type", string(event.Type)), zap.Error(err))
	}
}
