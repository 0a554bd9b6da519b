package dto

import (
	"time"

	"github.com/spec-kit/event-budget-service/internal/domain"
)

// CreateUnitRequest is the unit creation payload.
type CreateUnitRequest struct {
	Name string `json:"name" validate:"required,min=2,max=120"`
}

// UnitResponse is the API shape of a unit.
type UnitResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUnitResponse maps a unit to its API shape.
func NewUnitResponse(unit *domain.Unit) UnitResponse {
	return UnitResponse{ID: unit.ID, Name: unit.Name, CreatedAt: unit.CreatedAt}
}

// NewUnitResponses maps a slice of units.
func NewUnitResponses(units []domain.Unit) []UnitResponse {
	out := make([]UnitResponse, 0, len(units))
	for i := range units {
		out = append(out, NewUnitResponse(&units[i]))
	}
	return out
}
