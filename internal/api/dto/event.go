package dto

import (
	"time"

	"github.com/spec-kit/event-budget-service/internal/domain"
	"github.com/spec-kit/event-budget-service/internal/service"
)

// CreateEventRequest is the event creation payload.
type CreateEventRequest struct {
	Name             string    `json:"name" validate:"required,min=2,max=200"`
	EventCode        *string   `json:"eventCode"`
	StartDate        time.Time `json:"startDate" validate:"required"`
	EndDate          time.Time `json:"endDate" validate:"required"`
	Location         *string   `json:"location"`
	Description      *string   `json:"description"`
	Budget           *float64  `json:"budget" validate:"omitempty,gte=0"`
	UnitID           *string   `json:"unitId" validate:"omitempty,uuid"`
	Project          string    `json:"project" validate:"required"`
	Action           string    `json:"action" validate:"required"`
	ResponsibleUnit  string    `json:"responsibleUnit" validate:"required"`
	ResponsibleEmail string    `json:"responsibleEmail" validate:"required,email"`
	ResponsiblePhone string    `json:"responsiblePhone" validate:"required"`
}

// ToInput converts the request to a service input.
func (r CreateEventRequest) ToInput() service.EventCreateInput {
	return service.EventCreateInput{
		Name:             r.Name,
		EventCode:        r.EventCode,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		Location:         r.Location,
		Description:      r.Description,
		Budget:           r.Budget,
		UnitID:           r.UnitID,
		Project:          r.Project,
		Action:           r.Action,
		ResponsibleUnit:  r.ResponsibleUnit,
		ResponsibleEmail: r.ResponsibleEmail,
		ResponsiblePhone: r.ResponsiblePhone,
	}
}

// UpdateEventRequest is the partial event update payload. Any unitId sent
// by a client is ignored, the event's unit never moves.
type UpdateEventRequest struct {
	Name               *string    `json:"name" validate:"omitempty,min=2,max=200"`
	EventCode          *string    `json:"eventCode"`
	StartDate          *time.Time `json:"startDate"`
	EndDate            *time.Time `json:"endDate"`
	Location           *string    `json:"location"`
	Description        *string    `json:"description"`
	Budget             *float64   `json:"budget" validate:"omitempty,gte=0"`
	Status             *string    `json:"status" validate:"omitempty,oneof=OPEN IN_PROGRESS PAUSED COMPLETED CANCELED"`
	CancellationReason *string    `json:"cancellationReason"`
	Project            *string    `json:"project"`
	Action             *string    `json:"action"`
	ResponsibleUnit    *string    `json:"responsibleUnit"`
	ResponsibleEmail   *string    `json:"responsibleEmail" validate:"omitempty,email"`
	ResponsiblePhone   *string    `json:"responsiblePhone"`
}

// ToInput converts the request to a service input.
func (r UpdateEventRequest) ToInput() service.EventUpdateInput {
	input := service.EventUpdateInput{
		Name:               r.Name,
		EventCode:          r.EventCode,
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
		Location:           r.Location,
		Description:        r.Description,
		Budget:             r.Budget,
		CancellationReason: r.CancellationReason,
		Project:            r.Project,
		Action:             r.Action,
		ResponsibleUnit:    r.ResponsibleUnit,
		ResponsibleEmail:   r.ResponsibleEmail,
		ResponsiblePhone:   r.ResponsiblePhone,
	}
	if r.Status != nil {
		status := domain.EventStatus(*r.Status)
		input.Status = &status
	}
	return input
}

// EventResponse is the API shape of an event.
type EventResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	EventCode          *string   `json:"eventCode,omitempty"`
	StartDate          time.Time `json:"startDate"`
	EndDate            time.Time `json:"endDate"`
	Location           *string   `json:"location,omitempty"`
	Description        *string   `json:"description,omitempty"`
	Budget             float64   `json:"budget"`
	Status             string    `json:"status"`
	CancellationReason *string   `json:"cancellationReason,omitempty"`
	UserID             string    `json:"userId"`
	UnitID             *string   `json:"unitId,omitempty"`
	Project            string    `json:"project"`
	Action             string    `json:"action"`
	ResponsibleUnit    string    `json:"responsibleUnit"`
	ResponsibleEmail   string    `json:"responsibleEmail"`
	ResponsiblePhone   string    `json:"responsiblePhone"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// EventDetailResponse adds transactions and the financial summary.
type EventDetailResponse struct {
	EventResponse
	Transactions []TransactionResponse  `json:"transactions"`
	Financials   domain.EventFinancials `json:"financials"`
}

// NewEventResponse maps an event to its API shape.
func NewEventResponse(event *domain.Event) EventResponse {
	return EventResponse{
		ID:                 event.ID,
		Name:               event.Name,
		EventCode:          event.EventCode,
		StartDate:          event.StartDate,
		EndDate:            event.EndDate,
		Location:           event.Location,
		Description:        event.Description,
		Budget:             event.Budget,
		Status:             string(event.Status),
		CancellationReason: event.CancellationReason,
		UserID:             event.UserID,
		UnitID:             event.UnitID,
		Project:            event.Project,
		Action:             event.Action,
		ResponsibleUnit:    event.ResponsibleUnit,
		ResponsibleEmail:   event.ResponsibleEmail,
		ResponsiblePhone:   event.ResponsiblePhone,
		CreatedAt:          event.CreatedAt,
		UpdatedAt:          event.UpdatedAt,
	}
}

// NewEventResponses maps a slice of events.
func NewEventResponses(events []domain.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for i := range events {
		out = append(out, NewEventResponse(&events[i]))
	}
	return out
}

// NewEventDetailResponse maps an event with its children and summary.
func NewEventDetailResponse(event *domain.Event, txs []domain.Transaction, financials *domain.EventFinancials) EventDetailResponse {
	return EventDetailResponse{
		EventResponse: NewEventResponse(event),
		Transactions:  NewTransactionResponses(txs),
		Financials:    *financials,
	}
}
