package dto

import (
	"time"

	"github.com/spec-kit/event-budget-service/internal/domain"
	"github.com/spec-kit/event-budget-service/internal/service"
)

// CreateCommunicationRequest is the communication item creation payload.
type CreateCommunicationRequest struct {
	EventID      string    `json:"eventId" validate:"required,uuid"`
	ServiceID    string    `json:"serviceId" validate:"required,uuid"`
	OperatorID   *string   `json:"operatorId" validate:"omitempty,uuid"`
	DeliveryDate time.Time `json:"deliveryDate" validate:"required"`
	Quantity     *int      `json:"quantity" validate:"omitempty,min=1"`
	Status       *string   `json:"status" validate:"omitempty,oneof=AGUARDANDO EM_ATENDIMENTO CRIACAO APROVADO REPROVADO"`
}

// ToInput converts the request to a service input.
func (r CreateCommunicationRequest) ToInput() service.CommunicationCreateInput {
	input := service.CommunicationCreateInput{
		EventID:      r.EventID,
		ServiceID:    r.ServiceID,
		OperatorID:   r.OperatorID,
		DeliveryDate: r.DeliveryDate,
		Quantity:     r.Quantity,
	}
	if r.Status != nil {
		status := domain.CommunicationStatus(*r.Status)
		input.Status = &status
	}
	return input
}

// UpdateCommunicationRequest is the partial update payload.
type UpdateCommunicationRequest struct {
	ServiceID    *string    `json:"serviceId" validate:"omitempty,uuid"`
	OperatorID   *string    `json:"operatorId" validate:"omitempty,uuid"`
	DeliveryDate *time.Time `json:"deliveryDate"`
	Quantity     *int       `json:"quantity" validate:"omitempty,min=1"`
	Status       *string    `json:"status" validate:"omitempty,oneof=AGUARDANDO EM_ATENDIMENTO CRIACAO APROVADO REPROVADO"`
}

// ToInput converts the request to a service input.
func (r UpdateCommunicationRequest) ToInput() service.CommunicationUpdateInput {
	input := service.CommunicationUpdateInput{
		ServiceID:    r.ServiceID,
		OperatorID:   r.OperatorID,
		DeliveryDate: r.DeliveryDate,
		Quantity:     r.Quantity,
	}
	if r.Status != nil {
		status := domain.CommunicationStatus(*r.Status)
		input.Status = &status
	}
	return input
}

// CommunicationResponse is the API shape of a communication item with its
// joined service and operator.
type CommunicationResponse struct {
	ID           string            `json:"id"`
	EventID      string            `json:"eventId"`
	ServiceID    string            `json:"serviceId"`
	OperatorID   *string           `json:"operatorId,omitempty"`
	DeliveryDate time.Time         `json:"deliveryDate"`
	Quantity     int               `json:"quantity"`
	Status       string            `json:"status"`
	Service      *ServiceResponse  `json:"service,omitempty"`
	Operator     *OperatorResponse `json:"operator,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// NewCommunicationResponse maps a communication item to its API shape.
func NewCommunicationResponse(item *domain.CommunicationItem) CommunicationResponse {
	resp := CommunicationResponse{
		ID:           item.ID,
		EventID:      item.EventID,
		ServiceID:    item.ServiceID,
		OperatorID:   item.OperatorID,
		DeliveryDate: item.DeliveryDate,
		Quantity:     item.Quantity,
		Status:       string(item.Status),
		CreatedAt:    item.CreatedAt,
	}
	if item.Service != nil {
		svc := NewServiceResponse(item.Service)
		resp.Service = &svc
	}
	if item.Operator != nil {
		op := NewOperatorResponse(item.Operator)
		resp.Operator = &op
	}
	return resp
}

// NewCommunicationResponses maps a slice of items.
func NewCommunicationResponses(items []domain.CommunicationItem) []CommunicationResponse {
	out := make([]CommunicationResponse, 0, len(items))
	for i := range items {
		out = append(out, NewCommunicationResponse(&items[i]))
	}
	return out
}
