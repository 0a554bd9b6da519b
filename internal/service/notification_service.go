package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/event-budget-service/internal/config"
	"github.com/spec-kit/event-budget-service/internal/events"
)

// NotificationService turns domain events into outbound notifications.
// Delivery is currently a structured log plus stubbed email/webhook calls.
type NotificationService struct {
	cfg    config.NotificationConfig
	logger *zap.Logger
}

// NewNotificationService builds the service.
func NewNotificationService(cfg config.NotificationConfig, logger *zap.Logger) *NotificationService {
	return &NotificationService{cfg: cfg, logger: logger}
}

// HandleEvent is the dispatcher-facing entry point.
func (s *NotificationService) HandleEvent(ctx context.Context, envelope events.Envelope) error {
	subject := s.subjectFor(envelope)
	s.logger.Info("notification",
		zap.String("event_type", string(envelope.Type)),
		zap.String("event_id", envelope.EventID),
		zap.String("actor_id", envelope.ActorID),
		zap.String("subject", subject),
	)
	s.sendEmail(ctx, subject)
	s.callWebhook(ctx, envelope)
	return nil
}

func (s *NotificationService) subjectFor(envelope events.Envelope) string {
	switch envelope.Type {
	case events.TypeEventCreated:
		return "New event created"
	case events.TypeEventStatusChanged:
		if p, ok := envelope.Payload.(events.EventStatusChangedPayload); ok {
			return fmt.Sprintf("Event status changed to %s", p.NewStatus)
		}
		return "Event status changed"
	case events.TypeTransactionRecorded:
		return "New transaction recorded"
	case events.TypeRequisitionOpened:
		return "New requisition opened"
	case events.TypeCommunicationRequested:
		return "New communication request"
	default:
		return string(envelope.Type)
	}
}

// sendEmail is a stub. A real SMTP or provider integration slots in here.
func (s *NotificationService) sendEmail(_ context.Context, subject string) {
	if s.cfg.EmailFrom == "" {
		return
	}
	s.logger.Debug("email notification queued",
		zap.String("from", s.cfg.EmailFrom),
		zap.String("subject", subject),
	)
}

// callWebhook is a stub. Posting the envelope to the configured URL slots
// in here.
func (s *NotificationService) callWebhook(_ context.Context, envelope events.Envelope) {
	if s.cfg.WebhookURL == "" {
		return
	}
	s.logger.Debug("webhook notification queued",
		zap.String("url", s.cfg.WebhookURL),
		zap.String("event_type", string(envelope.Type)),
	)
}
