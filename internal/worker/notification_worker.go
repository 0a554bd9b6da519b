package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/event-budget-service/internal/events"
	"github.com/spec-kit/event-budget-service/internal/service"
)

// StartNotificationWorker subscribes the notification service to every
// domain event type.
func StartNotificationWorker(dispatcher events.Dispatcher, notifications *service.NotificationService, logger *zap.Logger) {
	types := []events.Type{
		events.TypeEventCreated,
		events.TypeEventStatusChanged,
		events.TypeTransactionRecorded,
		events.TypeRequisitionOpened,
		events.TypeCommunicationRequested,
	}
	for _, t := range types {
		dispatcher.Subscribe(t, notifications.HandleEvent)
	}
	logger.Info("notification worker registered", zap.Int("event_types", len(types)))
}
