package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/event-budget-service/internal/auth"
	"github.com/spec-kit/event-budget-service/internal/domain"
	"github.com/spec-kit/event-budget-service/internal/events"
	"github.com/spec-kit/event-budget-service/internal/repository"
	apperrors "github.com/spec-kit/event-budget-service/pkg/util"
)

// EventService coordinates event CRUD and the lifecycle state machine.
type EventService struct {
	events       repository.EventRepository
	transactions repository.TransactionRepository
	units        repository.UnitRepository
	dispatcher   events.Dispatcher
	summaries    *SummaryCache
}

// EventDependencies bundles collaborators for the event service.
type EventDependencies struct {
	EventRepo       repository.EventRepository
	TransactionRepo repository.TransactionRepository
	UnitRepo        repository.UnitRepository
	Dispatcher      events.Dispatcher
	Summaries       *SummaryCache
}

// NewEventService constructs the service.
func NewEventService(deps EventDependencies) *EventService {
	return &EventService{
		events:       deps.EventRepo,
		transactions: deps.TransactionRepo,
		units:        deps.UnitRepo,
		dispatcher:   deps.Dispatcher,
		summaries:    deps.Summaries,
	}
}

// EventCreateInput describes event creation payload.
type EventCreateInput struct {
	Name             string
	EventCode        *string
	StartDate        time.Time
	EndDate          time.Time
	Location         *string
	Description      *string
	Budget           *float64
	UnitID           *string
	Project          string
	Action           string
	ResponsibleUnit  string
	ResponsibleEmail string
	ResponsiblePhone string
}

// EventUpdateInput describes a partial event update. UnitID is absent on
// purpose: an event's unit is fixed at creation and cannot be moved by a
// later request.
type EventUpdateInput struct {
	Name               *string
	EventCode          *string
	StartDate          *time.Time
	EndDate            *time.Time
	Location           *string
	Description        *string
	Budget             *float64
	Status             *domain.EventStatus
	CancellationReason *string
	Project            *string
	Action             *string
	ResponsibleUnit    *string
	ResponsibleEmail   *string
	ResponsiblePhone   *string
}

func (in EventUpdateInput) hasFieldEdits() bool {
	return in.Name != nil || in.EventCode != nil || in.StartDate != nil || in.EndDate != nil ||
		in.Location != nil || in.Description != nil || in.Budget != nil || in.Project != nil ||
		in.Action != nil || in.ResponsibleUnit != nil || in.ResponsibleEmail != nil ||
		in.ResponsiblePhone != nil
}

// Create opens a new event owned by the actor. Non-MASTER actors create
// events in their own unit; a unit-less MASTER may target any unit.
func (s *EventService) Create(ctx context.Context, actor *domain.User, input EventCreateInput) (*domain.Event, error) {
	if actor.Role == domain.RoleObserver {
		return nil, apperrors.NewForbidden("observers cannot create events")
	}

	unitID := actor.UnitID
	if unitID == nil && actor.Role == domain.RoleMaster && input.UnitID != nil {
		if _, err := s.units.GetByID(ctx, *input.UnitID); err != nil {
			return nil, apperrors.NewValidationError("unit does not exist", map[string]any{"unitId": *input.UnitID})
		}
		unitID = input.UnitID
	}

	if input.EndDate.Before(input.StartDate) {
		return nil, apperrors.NewValidationError("endDate must not precede startDate", nil)
	}

	budget := 0.0
	if input.Budget != nil {
		budget = *input.Budget
	}

	event := &domain.Event{
		Name:             strings.TrimSpace(input.Name),
		EventCode:        input.EventCode,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Location:         input.Location,
		Description:      input.Description,
		Budget:           budget,
		Status:           domain.EventStatusOpen,
		UserID:           actor.ID,
		UnitID:           unitID,
		Project:          input.Project,
		Action:           input.Action,
		ResponsibleUnit:  input.ResponsibleUnit,
		ResponsibleEmail: input.ResponsibleEmail,
		ResponsiblePhone: input.ResponsiblePhone,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Envelope{
		Type:    events.TypeEventCreated,
		EventID: event.ID,
		Payload: events.EventCreatedPayload{
			Name:   event.Name,
			UnitID: event.UnitID,
			Budget: event.Budget,
		},
	}, actor)
	return event, nil
}

// List returns events visible to the actor: all for MASTER, the actor's
// unit otherwise, or only their own events when they have no unit.
func (s *EventService) List(ctx context.Context, actor *domain.User) ([]domain.Event, error) {
	filter := repository.EventFilter{}
	if actor.Role != domain.RoleMaster {
		if actor.UnitID != nil {
			filter.UnitID = actor.UnitID
		} else {
			ownerID := actor.ID
			filter.OwnerID = &ownerID
		}
	}
	return s.events.List(ctx, filter)
}

// GetDetail returns an event with its transactions and financial summary.
func (s *EventService) GetDetail(ctx context.Context, actor *domain.User, id string) (*domain.Event, []domain.Transaction, *domain.EventFinancials, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := guardEventRead(actor, event); err != nil {
		return nil, nil, nil, err
	}

	txs, err := s.transactions.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	summary, err := s.Financials(ctx, event)
	if err != nil {
		return nil, nil, nil, err
	}
	return event, txs, summary, nil
}

// Financials computes (or serves from cache) the budget/spend/balance
// summary. Spend is SUM(amount * quantity) over non-REJECTED transactions,
// the single formula used by every view.
func (s *EventService) Financials(ctx context.Context, event *domain.Event) (*domain.EventFinancials, error) {
	if cached, ok := s.summaries.Get(ctx, event.ID); ok {
		return cached, nil
	}
	spend, err := s.transactions.SumForEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	summary := &domain.EventFinancials{
		Budget:  event.Budget,
		Spend:   spend,
		Balance: event.Budget - spend,
	}
	s.summaries.Set(ctx, event.ID, summary)
	return summary, nil
}

// Update applies a partial update, running status changes through the
// transition table and blocking field edits on terminal states.
func (s *EventService) Update(ctx context.Context, actor *domain.User, id string, input EventUpdateInput) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleObserver {
		return nil, apperrors.NewForbidden("observers cannot update events")
	}
	if !auth.CanMutate(actor, event.UnitID, event.UserID) {
		return nil, apperrors.NewForbidden("access denied: event belongs to another unit")
	}

	statusChanging := input.Status != nil && *input.Status != event.Status

	if input.hasFieldEdits() {
		if event.Status == domain.EventStatusCanceled {
			return nil, apperrors.NewForbidden("canceled events are read-only until reopened")
		}
		if event.Status == domain.EventStatusCompleted && !auth.CanMutateCompleted(actor) {
			return nil, apperrors.NewForbidden("completed events can only be modified by a MASTER")
		}
	}

	oldStatus := event.Status
	if statusChanging {
		next := *input.Status
		if !domain.ValidEventStatus(next) {
			return nil, apperrors.NewValidationError("unknown status", map[string]any{"status": next})
		}
		if !auth.CanTransitionStatus(actor) {
			return nil, apperrors.NewForbidden("only MASTER or MANAGER can change event status")
		}
		master := actor.Role == domain.RoleMaster
		if !domain.CanTransition(event.Status, next, master) {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("illegal status transition from %s to %s", event.Status, next), nil)
		}
		if next == domain.EventStatusCanceled {
			if input.CancellationReason == nil || strings.TrimSpace(*input.CancellationReason) == "" {
				return nil, apperrors.NewValidationError("cancellation requires a reason",
					map[string]any{"cancellationReason": "required"})
			}
			reason := strings.TrimSpace(*input.CancellationReason)
			event.CancellationReason = &reason
		}
		if domain.IsReopen(event.Status, next) {
			event.CancellationReason = nil
		}
		event.Status = next
	}

	applyEventEdits(event, input)

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}
	s.summaries.Invalidate(ctx, event.ID)

	if statusChanging {
		s.publish(ctx, events.Envelope{
			Type:    events.TypeEventStatusChanged,
			EventID: event.ID,
			Payload: events.EventStatusChangedPayload{
				OldStatus:          oldStatus,
				NewStatus:          event.Status,
				CancellationReason: event.CancellationReason,
			},
		}, actor)
	}
	return event, nil
}

// Delete removes an event and, through the schema, its transactions,
// requisitions, and communication items.
func (s *EventService) Delete(ctx context.Context, actor *domain.User, id string) error {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := guardEventWrite(actor, event); err != nil {
		return err
	}
	if err := s.events.Delete(ctx, id); err != nil {
		return err
	}
	s.summaries.Invalidate(ctx, id)
	return nil
}

func applyEventEdits(event *domain.Event, input EventUpdateInput) {
	if input.Name != nil {
		event.Name = strings.TrimSpace(*input.Name)
	}
	if input.EventCode != nil {
		event.EventCode = input.EventCode
	}
	if input.StartDate != nil {
		event.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		event.EndDate = *input.EndDate
	}
	if input.Location != nil {
		event.Location = input.Location
	}
	if input.Description != nil {
		event.Description = input.Description
	}
	if input.Budget != nil {
		event.Budget = *input.Budget
	}
	if input.Project != nil {
		event.Project = *input.Project
	}
	if input.Action != nil {
		event.Action = *input.Action
	}
	if input.ResponsibleUnit != nil {
		event.ResponsibleUnit = *input.ResponsibleUnit
	}
	if input.ResponsibleEmail != nil {
		event.ResponsibleEmail = *input.ResponsibleEmail
	}
	if input.ResponsiblePhone != nil {
		event.ResponsiblePhone = *input.ResponsiblePhone
	}
}

func (s *EventService) publish(ctx context.Context, envelope events.Envelope, actor *domain.User) {
	publishEnvelope(ctx, s.dispatcher, envelope, actor)
}

func publishEnvelope(ctx context.Context, dispatcher events.Dispatcher, envelope events.Envelope, actor *domain.User) {
	if dispatcher == nil {
		return
	}
	if envelope.ID == "" {
		envelope.ID = uuid.NewString()
	}
	if envelope.Timestamp.IsZero() {
		envelope.Timestamp = time.Now()
	}
	if actor != nil {
		envelope.ActorID = actor.ID
		envelope.ActorRole = actor.Role
	}
	_ = dispatcher.Publish(ctx, envelope)
}
