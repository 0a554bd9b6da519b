package service

import (
	"context"
	"math/rand"

	"github.com/spec-kit/event-budget-service/internal/domain"
	"github.com/spec-kit/event-budget-service/internal/events"
	"github.com/spec-kit/event-budget-service/internal/repository"
	apperrors "github.com/spec-kit/event-budget-service/pkg/util"
)

// Attempts before giving up on finding a free requisition number.
const requisitionNumberAttempts = 10

// RequisitionService manages purchase requisitions and the transactions
// grouped under them.
type RequisitionService struct {
	requisitions repository.RequisitionRepository
	transactions repository.TransactionRepository
	events       repository.EventRepository
	dispatcher   events.Dispatcher
}

// NewRequisitionService constructs the service.
func NewRequisitionService(
	requisitions repository.RequisitionRepository,
	transactions repository.TransactionRepository,
	eventsRepo repository.EventRepository,
	dispatcher events.Dispatcher,
) *RequisitionService {
	return &RequisitionService{
		requisitions: requisitions,
		transactions: transactions,
		events:       eventsRepo,
		dispatcher:   dispatcher,
	}
}

// ListByEvent returns an event's requisitions with their transactions.
func (s *RequisitionService) ListByEvent(ctx context.Context, actor *domain.User, eventID string) ([]domain.Requisition, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := guardEventRead(actor, event); err != nil {
		return nil, err
	}
	reqs, err := s.requisitions.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	for i := range reqs {
		txs, err := s.transactions.ListByRequisition(ctx, reqs[i].ID)
		if err != nil {
			return nil, err
		}
		reqs[i].Transactions = txs
	}
	return reqs, nil
}

// Get returns one requisition with its transactions.
func (s *RequisitionService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Requisition, error) {
	req, err := s.requisitions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	event, err := s.events.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if err := guardEventRead(actor, event); err != nil {
		return nil, err
	}
	txs, err := s.transactions.ListByRequisition(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	req.Transactions = txs
	return req, nil
}

// Create opens a requisition with a random six digit number. Uniqueness is
// enforced by the database; a collision just draws again.
func (s *RequisitionService) Create(ctx context.Context, actor *domain.User, eventID string) (*domain.Requisition, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := guardEventWrite(actor, event); err != nil {
		return nil, err
	}

	var req *domain.Requisition
	for attempt := 0; attempt < requisitionNumberAttempts; attempt++ {
		candidate := &domain.Requisition{
			Number:  randomRequisitionNumber(),
			EventID: event.ID,
		}
		err = s.requisitions.Create(ctx, candidate)
		if err == nil {
			req = candidate
			break
		}
		if !repository.IsUniqueViolation(err) {
			return nil, err
		}
	}
	if req == nil {
		return nil, apperrors.NewConflict("could not allocate a unique requisition number", nil)
	}

	publishEnvelope(ctx, s.dispatcher, events.Envelope{
		Type:    events.TypeRequisitionOpened,
		EventID: event.ID,
		Payload: events.RequisitionOpenedPayload{
			RequisitionID: req.ID,
			Number:        req.Number,
		},
	}, actor)
	return req, nil
}

// Delete removes a requisition. Its transactions survive, detached, so the
// event's spend does not silently change.
func (s *RequisitionService) Delete(ctx context.Context, actor *domain.User, id string) error {
	req, err := s.requisitions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	event, err := s.events.GetByID(ctx, req.EventID)
	if err != nil {
		return err
	}
	if err := guardEventWrite(actor, event); err != nil {
		return err
	}
	if err := s.transactions.DetachFromRequisition(ctx, req.ID); err != nil {
		return err
	}
	return s.requisitions.Delete(ctx, id)
}

func randomRequisitionNumber() int {
	span := domain.RequisitionNumberMax - domain.RequisitionNumberMin + 1
	return domain.RequisitionNumberMin + rand.Intn(span)
}
