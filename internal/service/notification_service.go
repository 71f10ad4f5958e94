package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/reporting-service/internal/events"
)

// NotificationService logs domain events as they occur. It stands in for
// an email/webhook integration the deployment can point elsewhere.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventReportSubmitted, n.handleReportSubmitted)
	n.dispatcher.Subscribe(events.EventFeedbackRecorded, n.handleFeedbackRecorded)
	n.dispatcher.Subscribe(events.EventRatingSubmitted, n.handleRatingSubmitted)
}

func (n *NotificationService) handleUserRegistered(_ context.Context, event events.Event) error {
	n.logger.Info("UserRegistered", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleReportSubmitted(_ context.Context, event events.Event) error {
	n.logger.Info("ReportSubmitted",
		zap.String("event_id", event.ID),
		zap.String("actor_role", string(event.ActorRole)),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleFeedbackRecorded(_ context.Context, event events.Event) error {
	n.logger.Info("FeedbackRecorded", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleRatingSubmitted(_ context.Context, event events.Event) error {
	n.logger.Info("RatingSubmitted", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	return nil
}
