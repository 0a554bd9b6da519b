package domain

import "time"

// EventStatus enumerates lifecycle states for events.
type EventStatus string

const (
	EventStatusOpen       EventStatus = "OPEN"
	EventStatusInProgress EventStatus = "IN_PROGRESS"
	EventStatusPaused     EventStatus = "PAUSED"
	EventStatusCompleted  EventStatus = "COMPLETED"
	EventStatusCanceled   EventStatus = "CANCELED"
)

// ValidEventStatus reports whether the value is a known status.
func ValidEventStatus(s EventStatus) bool {
	_, ok := statusTransitions[s]
	return ok
}

// Event is the top-level planned activity with a budget and lifecycle status.
type Event struct {
	ID                 string
	Name               string
	EventCode          *string
	StartDate          time.Time
	EndDate            time.Time
	Location           *string
	Description        *string
	Budget             float64
	Status             EventStatus
	CancellationReason *string
	UserID             string
	UnitID             *string
	Project            string
	Action             string
	ResponsibleUnit    string
	ResponsibleEmail   string
	ResponsiblePhone   string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// EventFinancials summarizes budget vs. spend for an event.
// Spend is SUM(amount * quantity) over non-REJECTED transactions.
type EventFinancials struct {
	Budget  float64 `json:"budget"`
	Spend   float64 `json:"spend"`
	Balance float64 `json:"balance"`
}

var statusTransitions = map[EventStatus][]EventStatus{
	EventStatusOpen:       {EventStatusInProgress},
	EventStatusInProgress: {EventStatusPaused, EventStatusCompleted, EventStatusCanceled},
	EventStatusPaused:     {EventStatusInProgress, EventStatusCompleted, EventStatusCanceled},
	EventStatusCompleted:  {},
	EventStatusCanceled:   {},
}

// CanTransition reports whether moving from current to next is legal.
// COMPLETED and CANCELED are terminal except a MASTER may reopen
// them back to IN_PROGRESS.
func CanTransition(current, next EventStatus, master bool) bool {
	if master && next == EventStatusInProgress &&
		(current == EventStatusCompleted || current == EventStatusCanceled) {
		return true
	}
	for _, candidate := range statusTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// IsReopen reports whether the transition leaves a terminal state.
func IsReopen(current, next EventStatus) bool {
	return (current == EventStatusCompleted || current == EventStatusCanceled) &&
		next == EventStatusInProgress
}
