package dto

import (
	"time"

	"github.com/spec-kit/event-budget-service/internal/domain"
)

// CreateOperatorRequest is the operator creation payload.
type CreateOperatorRequest struct {
	Name string `json:"name" validate:"required,min=2,max=120"`
}

// UpdateOperatorRequest renames an operator.
type UpdateOperatorRequest struct {
	Name string `json:"name" validate:"required,min=2,max=120"`
}

// OperatorResponse is the API shape of an operator.
type OperatorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewOperatorResponse maps an operator to its API shape.
func NewOperatorResponse(op *domain.Operator) OperatorResponse {
	return OperatorResponse{ID: op.ID, Name: op.Name, CreatedAt: op.CreatedAt, UpdatedAt: op.UpdatedAt}
}

// NewOperatorResponses maps a slice of operators.
func NewOperatorResponses(ops []domain.Operator) []OperatorResponse {
	out := make([]OperatorResponse, 0, len(ops))
	for i := range ops {
		out = append(out, NewOperatorResponse(&ops[i]))
	}
	return out
}

// CreateServiceRequest is the service type creation payload.
type CreateServiceRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=120"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// UpdateServiceRequest is the partial service type update.
type UpdateServiceRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=120"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// ServiceResponse is the API shape of a service type.
type ServiceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewServiceResponse maps a service type to its API shape.
func NewServiceResponse(svc *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:          svc.ID,
		Name:        svc.Name,
		Description: svc.Description,
		CreatedAt:   svc.CreatedAt,
		UpdatedAt:   svc.UpdatedAt,
	}
}

// NewServiceResponses maps a slice of service types.
func NewServiceResponses(svcs []domain.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(svcs))
	for i := range svcs {
		out = append(out, NewServiceResponse(&svcs[i]))
	}
	return out
}
