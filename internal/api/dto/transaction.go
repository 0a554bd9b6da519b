package dto

import (
	"time"

	"github.com/spec-kit/event-budget-service/internal/domain"
	"github.com/spec-kit/event-budget-service/internal/service"
)

// CreateTransactionRequest is the transaction creation payload.
type CreateTransactionRequest struct {
	EventID         string     `json:"eventId" validate:"required,uuid"`
	Description     string     `json:"description" validate:"required,min=2,max=300"`
	Amount          float64    `json:"amount" validate:"required,gt=0"`
	Type            string     `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Status          *string    `json:"status" validate:"omitempty,oneof=QUOTATION APPROVED PRODUCTION COMPLETED REJECTED"`
	Quantity        *int       `json:"quantity" validate:"omitempty,min=1"`
	RequisitionNum  *string    `json:"requisitionNum"`
	ServiceOrderNum *string    `json:"serviceOrderNum"`
	DeliveryDate    *time.Time `json:"deliveryDate"`
	RequisitionID   *string    `json:"requisitionId" validate:"omitempty,uuid"`
}

// ToInput converts the request to a service input.
func (r CreateTransactionRequest) ToInput() service.TransactionCreateInput {
	input := service.TransactionCreateInput{
		EventID:         r.EventID,
		Description:     r.Description,
		Amount:          r.Amount,
		Type:            domain.TransactionType(r.Type),
		Quantity:        r.Quantity,
		RequisitionNum:  r.RequisitionNum,
		ServiceOrderNum: r.ServiceOrderNum,
		DeliveryDate:    r.DeliveryDate,
		RequisitionID:   r.RequisitionID,
	}
	if r.Status != nil {
		status := domain.TransactionStatus(*r.Status)
		input.Status = &status
	}
	return input
}

// UpdateTransactionRequest is the partial transaction update payload.
type UpdateTransactionRequest struct {
	Description     *string    `json:"description" validate:"omitempty,min=2,max=300"`
	Amount          *float64   `json:"amount" validate:"omitempty,gt=0"`
	Status          *string    `json:"status" validate:"omitempty,oneof=QUOTATION APPROVED PRODUCTION COMPLETED REJECTED"`
	Quantity        *int       `json:"quantity" validate:"omitempty,min=1"`
	RequisitionNum  *string    `json:"requisitionNum"`
	ServiceOrderNum *string    `json:"serviceOrderNum"`
	DeliveryDate    *time.Time `json:"deliveryDate"`
	RequisitionID   *string    `json:"requisitionId" validate:"omitempty,uuid"`
}

// ToInput converts the request to a service input.
func (r UpdateTransactionRequest) ToInput() service.TransactionUpdateInput {
	input := service.TransactionUpdateInput{
		Description:     r.Description,
		Amount:          r.Amount,
		Quantity:        r.Quantity,
		RequisitionNum:  r.RequisitionNum,
		ServiceOrderNum: r.ServiceOrderNum,
		DeliveryDate:    r.DeliveryDate,
		RequisitionID:   r.RequisitionID,
	}
	if r.Status != nil {
		status := domain.TransactionStatus(*r.Status)
		input.Status = &status
	}
	return input
}

// TransactionResponse is the API shape of a transaction.
type TransactionResponse struct {
	ID              string     `json:"id"`
	Description     string     `json:"description"`
	Amount          float64    `json:"amount"`
	Type            string     `json:"type"`
	Status          string     `json:"status"`
	Quantity        int        `json:"quantity"`
	RequisitionNum  *string    `json:"requisitionNum,omitempty"`
	ServiceOrderNum *string    `json:"serviceOrderNum,omitempty"`
	DeliveryDate    *time.Time `json:"deliveryDate,omitempty"`
	EventID         string     `json:"eventId"`
	RequisitionID   *string    `json:"requisitionId,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// NewTransactionResponse maps a transaction to its API shape.
func NewTransactionResponse(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              tx.ID,
		Description:     tx.Description,
		Amount:          tx.Amount,
		Type:            string(tx.Type),
		Status:          string(tx.Status),
		Quantity:        tx.Quantity,
		RequisitionNum:  tx.RequisitionNum,
		ServiceOrderNum: tx.ServiceOrderNum,
		DeliveryDate:    tx.DeliveryDate,
		EventID:         tx.EventID,
		RequisitionID:   tx.RequisitionID,
		CreatedAt:       tx.CreatedAt,
		UpdatedAt:       tx.UpdatedAt,
	}
}

// NewTransactionResponses maps a slice of transactions.
func NewTransactionResponses(txs []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, NewTransactionResponse(&txs[i]))
	}
	return out
}
