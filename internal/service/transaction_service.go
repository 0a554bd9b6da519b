package service

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/event-budget-service/internal/domain"
	"github.com/spec-kit/event-budget-service/internal/events"
	"github.com/spec-kit/event-budget-service/internal/repository"
	apperrors "github.com/spec-kit/event-budget-service/pkg/util"
)

// TransactionService manages income and expense records under an event.
type TransactionService struct {
	transactions repository.TransactionRepository
	events       repository.EventRepository
	requisitions repository.RequisitionRepository
	dispatcher   events.Dispatcher
	summaries    *SummaryCache
}

// NewTransactionService constructs the service.
func NewTransactionService(
	transactions repository.TransactionRepository,
	eventsRepo repository.EventRepository,
	requisitions repository.RequisitionRepository,
	dispatcher events.Dispatcher,
	summaries *SummaryCache,
) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		events:       eventsRepo,
		requisitions: requisitions,
		dispatcher:   dispatcher,
		summaries:    summaries,
	}
}

// TransactionCreateInput describes transaction creation payload.
type TransactionCreateInput struct {
	EventID         string
	Description     string
	Amount          float64
	Type            domain.TransactionType
	Status          *domain.TransactionStatus
	Quantity        *int
	RequisitionNum  *string
	ServiceOrderNum *string
	DeliveryDate    *time.Time
	RequisitionID   *string
}

// TransactionUpdateInput describes a partial update. Type and event are
// fixed at creation.
type TransactionUpdateInput struct {
	Description     *string
	Amount          *float64
	Status          *domain.TransactionStatus
	Quantity        *int
	RequisitionNum  *string
	ServiceOrderNum *string
	DeliveryDate    *time.Time
	RequisitionID   *string
}

// ListByEvent returns an event's transactions after a read guard.
func (s *TransactionService) ListByEvent(ctx context.Context, actor *domain.User, eventID string) ([]domain.Transaction, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := guardEventRead(actor, event); err != nil {
		return nil, err
	}
	return s.transactions.ListByEvent(ctx, eventID)
}

// Create records a transaction against an event.
func (s *TransactionService) Create(ctx context.Context, actor *domain.User, input TransactionCreateInput) (*domain.Transaction, error) {
	event, err := s.events.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, err
	}
	if err := guardEventWrite(actor, event); err != nil {
		return nil, err
	}

	if !domain.ValidTransactionType(input.Type) {
		return nil, apperrors.NewValidationError("unknown transaction type", map[string]any{"type": input.Type})
	}
	status := domain.TransactionStatusQuotation
	if input.Status != nil {
		if !domain.ValidTransactionStatus(*input.Status) {
			return nil, apperrors.NewValidationError("unknown transaction status", map[string]any{"status": *input.Status})
		}
		status = *input.Status
	}
	quantity := 1
	if input.Quantity != nil {
		if *input.Quantity < 1 {
			return nil, apperrors.NewValidationError("quantity must be at least 1", nil)
		}
		quantity = *input.Quantity
	}
	if input.RequisitionID != nil {
		req, err := s.requisitions.GetByID(ctx, *input.RequisitionID)
		if err != nil {
			return nil, apperrors.NewValidationError("requisition does not exist", map[string]any{"requisitionId": *input.RequisitionID})
		}
		if req.EventID != event.ID {
			return nil, apperrors.NewValidationError("requisition belongs to a different event", nil)
		}
	}

	tx := &domain.Transaction{
		Description:     strings.TrimSpace(input.Description),
		Amount:          input.Amount,
		Type:            input.Type,
		Status:          status,
		Quantity:        quantity,
		RequisitionNum:  input.RequisitionNum,
		ServiceOrderNum: input.ServiceOrderNum,
		DeliveryDate:    input.DeliveryDate,
		EventID:         event.ID,
		RequisitionID:   input.RequisitionID,
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	s.summaries.Invalidate(ctx, event.ID)

	publishEnvelope(ctx, s.dispatcher, events.Envelope{
		Type:    events.TypeTransactionRecorded,
		EventID: event.ID,
		Payload: events.TransactionRecordedPayload{
			TransactionID: tx.ID,
			Amount:        tx.Amount,
			Quantity:      tx.Quantity,
			Type:          tx.Type,
		},
	}, actor)
	return tx, nil
}

// Update applies a partial update to a transaction.
func (s *TransactionService) Update(ctx context.Context, actor *domain.User, id string, input TransactionUpdateInput) (*domain.Transaction, error) {
	tx, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	event, err := s.events.GetByID(ctx, tx.EventID)
	if err != nil {
		return nil, err
	}
	if err := guardEventWrite(actor, event); err != nil {
		return nil, err
	}

	if input.Description != nil {
		tx.Description = strings.TrimSpace(*input.Description)
	}
	if input.Amount != nil {
		tx.Amount = *input.Amount
	}
	if input.Status != nil {
		if !domain.ValidTransactionStatus(*input.Status) {
			return nil, apperrors.NewValidationError("unknown transaction status", map[string]any{"status": *input.Status})
		}
		tx.Status = *input.Status
	}
	if input.Quantity != nil {
		if *input.Quantity < 1 {
			return nil, apperrors.NewValidationError("quantity must be at least 1", nil)
		}
		tx.Quantity = *input.Quantity
	}
	if input.RequisitionNum != nil {
		tx.RequisitionNum = input.RequisitionNum
	}
	if input.ServiceOrderNum != nil {
		tx.ServiceOrderNum = input.ServiceOrderNum
	}
	if input.DeliveryDate != nil {
		tx.DeliveryDate = input.DeliveryDate
	}
	if input.RequisitionID != nil {
		req, err := s.requisitions.GetByID(ctx, *input.RequisitionID)
		if err != nil {
			return nil, apperrors.NewValidationError("requisition does not exist", map[string]any{"requisitionId": *input.RequisitionID})
		}
		if req.EventID != tx.EventID {
			return nil, apperrors.NewValidationError("requisition belongs to a different event", nil)
		}
		tx.RequisitionID = input.RequisitionID
	}

	if err := s.transactions.Update(ctx, tx); err != nil {
		return nil, err
	}
	s.summaries.Invalidate(ctx, tx.EventID)
	return tx, nil
}

// Delete removes a transaction.
func (s *TransactionService) Delete(ctx context.Context, actor *domain.User, id string) error {
	tx, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	event, err := s.events.GetByID(ctx, tx.EventID)
	if err != nil {
		return err
	}
	if err := guardEventWrite(actor, event); err != nil {
		return err
	}
	if err := s.transactions.Delete(ctx, id); err != nil {
		return err
	}
	s.summaries.Invalidate(ctx, tx.EventID)
	return nil
}
