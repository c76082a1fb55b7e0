package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/fit-training-service/internal/config"
	"github.com/spec-kit/fit-training-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	emailFrom  string
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.AppConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		emailFrom:  "noreply@" + cfg.Name + ".local",
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTraineeRegistered, n.handleTraineeRegistered)
	n.dispatcher.Subscribe(events.EventStatusAdvanced, n.handleStatusAdvanced)
	n.dispatcher.Subscribe(events.EventFitTestRecorded, n.handleFitTestRecorded)
}

func (n *NotificationService) handleTraineeRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("TraineeRegistered", zap.String("trainee_id", event.TraineeID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleStatusAdvanced(ctx context.Context, event events.Event) error {
	n.logger.Info("StatusAdvanced", zap.String("trainee_id", event.TraineeID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleFitTestRecorded(ctx context.Context, event events.Event) error {
	n.logger.Info("FitTestRecorded", zap.String("trainee_id", event.TraineeID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.emailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.emailFrom),
		zap.String("trainee_id", event.TraineeID),
		zap.String("event_type", string(event.Type)))
}
