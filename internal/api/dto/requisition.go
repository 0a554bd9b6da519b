package dto

import (
	"time"

	"github.com/spec-kit/event-budget-service/internal/domain"
)

// CreateRequisitionRequest names the target event. The number is assigned
// server side.
type CreateRequisitionRequest struct {
	EventID string `json:"eventId" validate:"required,uuid"`
}

// RequisitionResponse is the API shape of a requisition.
type RequisitionResponse struct {
	ID           string                `json:"id"`
	Number       int                   `json:"number"`
	EventID      string                `json:"eventId"`
	Transactions []TransactionResponse `json:"transactions"`
	Total        float64               `json:"total"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// NewRequisitionResponse maps a requisition to its API shape.
func NewRequisitionResponse(req *domain.Requisition) RequisitionResponse {
	return RequisitionResponse{
		ID:           req.ID,
		Number:       req.Number,
		EventID:      req.EventID,
		Transactions: NewTransactionResponses(req.Transactions),
		Total:        req.Total(),
		CreatedAt:    req.CreatedAt,
		UpdatedAt:    req.UpdatedAt,
	}
}

// NewRequisitionResponses maps a slice of requisitions.
func NewRequisitionResponses(reqs []domain.Requisition) []RequisitionResponse {
	out := make([]RequisitionResponse, 0, len(reqs))
	for i := range reqs {
		out = append(out, NewRequisitionResponse(&reqs[i]))
	}
	return out
}
