package service

import (
	"context"
	"time"

	"github.com/spec-kit/event-budget-service/internal/domain"
	"github.com/spec-kit/event-budget-service/internal/events"
	"github.com/spec-kit/event-budget-service/internal/repository"
	apperrors "github.com/spec-kit/event-budget-service/pkg/util"
)

// CommunicationService manages marketing/communication requests attached
// to an event.
type CommunicationService struct {
	items      repository.CommunicationRepository
	events     repository.EventRepository
	services   repository.ServiceRepository
	operators  repository.OperatorRepository
	dispatcher events.Dispatcher
}

// NewCommunicationService constructs the service.
func NewCommunicationService(
	items repository.CommunicationRepository,
	eventsRepo repository.EventRepository,
	services repository.ServiceRepository,
	operators repository.OperatorRepository,
	dispatcher events.Dispatcher,
) *CommunicationService {
	return &CommunicationService{
		items:      items,
		events:     eventsRepo,
		services:   services,
		operators:  operators,
		dispatcher: dispatcher,
	}
}

// CommunicationCreateInput describes item creation payload.
type CommunicationCreateInput struct {
	EventID      string
	ServiceID    string
	OperatorID   *string
	DeliveryDate time.Time
	Quantity     *int
	Status       *domain.CommunicationStatus
}

// CommunicationUpdateInput describes a partial update. The parent event
// is fixed at creation.
type CommunicationUpdateInput struct {
	ServiceID    *string
	OperatorID   *string
	DeliveryDate *time.Time
	Quantity     *int
	Status       *domain.CommunicationStatus
}

// ListByEvent returns an event's communication items with their service
// and operator joined.
func (s *CommunicationService) ListByEvent(ctx context.Context, actor *domain.User, eventID string) ([]domain.CommunicationItem, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := guardEventRead(actor, event); err != nil {
		return nil, err
	}
	return s.items.ListByEvent(ctx, eventID)
}

// Create attaches a communication request to an event. A MASTER creating
// an item must assign the operator up front; other roles leave assignment
// to a MASTER later.
func (s *CommunicationService) Create(ctx context.Context, actor *domain.User, input CommunicationCreateInput) (*domain.CommunicationItem, error) {
	event, err := s.events.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, err
	}
	if err := guardEventWrite(actor, event); err != nil {
		return nil, err
	}
	if _, err := s.services.GetByID(ctx, input.ServiceID); err != nil {
		return nil, apperrors.NewValidationError("service does not exist", map[string]any{"serviceId": input.ServiceID})
	}
	if actor.Role == domain.RoleMaster && input.OperatorID == nil {
		return nil, apperrors.NewValidationError("operator assignment is required",
			map[string]any{"operatorId": "required"})
	}
	if input.OperatorID != nil {
		if _, err := s.operators.GetByID(ctx, *input.OperatorID); err != nil {
			return nil, apperrors.NewValidationError("operator does not exist", map[string]any{"operatorId": *input.OperatorID})
		}
	}

	quantity := 1
	if input.Quantity != nil {
		if *input.Quantity < 1 {
			return nil, apperrors.NewValidationError("quantity must be at least 1", nil)
		}
		quantity = *input.Quantity
	}
	status := domain.CommunicationStatusAguardando
	if input.Status != nil {
		if !domain.ValidCommunicationStatus(*input.Status) {
			return nil, apperrors.NewValidationError("unknown communication status", map[string]any{"status": *input.Status})
		}
		status = *input.Status
	}

	item := &domain.CommunicationItem{
		EventID:      event.ID,
		ServiceID:    input.ServiceID,
		OperatorID:   input.OperatorID,
		DeliveryDate: input.DeliveryDate,
		Quantity:     quantity,
		Status:       status,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	// Reload so the response carries the joined service and operator.
	item, err = s.items.GetByID(ctx, item.ID)
	if err != nil {
		return nil, err
	}

	publishEnvelope(ctx, s.dispatcher, events.Envelope{
		Type:    events.TypeCommunicationRequested,
		EventID: event.ID,
		Payload: events.CommunicationRequestedPayload{
			ItemID:     item.ID,
			ServiceID:  item.ServiceID,
			OperatorID: item.OperatorID,
		},
	}, actor)
	return item, nil
}

// Update applies a partial update to a communication item.
func (s *CommunicationService) Update(ctx context.Context, actor *domain.User, id string, input CommunicationUpdateInput) (*domain.CommunicationItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	event, err := s.events.GetByID(ctx, item.EventID)
	if err != nil {
		return nil, err
	}
	if err := guardEventWrite(actor, event); err != nil {
		return nil, err
	}

	if input.ServiceID != nil {
		if _, err := s.services.GetByID(ctx, *input.ServiceID); err != nil {
			return nil, apperrors.NewValidationError("service does not exist", map[string]any{"serviceId": *input.ServiceID})
		}
		item.ServiceID = *input.ServiceID
	}
	if input.OperatorID != nil {
		if _, err := s.operators.GetByID(ctx, *input.OperatorID); err != nil {
			return nil, apperrors.NewValidationError("operator does not exist", map[string]any{"operatorId": *input.OperatorID})
		}
		item.OperatorID = input.OperatorID
	}
	if input.DeliveryDate != nil {
		item.DeliveryDate = *input.DeliveryDate
	}
	if input.Quantity != nil {
		if *input.Quantity < 1 {
			return nil, apperrors.NewValidationError("quantity must be at least 1", nil)
		}
		item.Quantity = *input.Quantity
	}
	if input.Status != nil {
		if !domain.ValidCommunicationStatus(*input.Status) {
			return nil, apperrors.NewValidationError("unknown communication status", map[string]any{"status": *input.Status})
		}
		item.Status = *input.Status
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return s.items.GetByID(ctx, item.ID)
}

// Delete removes a communication item.
func (s *CommunicationService) Delete(ctx context.Context, actor *domain.User, id string) error {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	event, err := s.events.GetByID(ctx, item.EventID)
	if err != nil {
		return err
	}
	if err := guardEventWrite(actor, event); err != nil {
		return err
	}
	return s.items.Delete(ctx, id)
}
