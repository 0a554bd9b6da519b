package events

import (
	"time"

	"github.com/spec-kit/event-budget-service/internal/domain"
)

// Type enumerates supported event identifiers.
type Type string

const (
	TypeEventCreated           Type = "event_created"
	TypeEventStatusChanged     Type = "event_status_changed"
	TypeTransactionRecorded    Type = "transaction_recorded"
	TypeRequisitionOpened      Type = "requisition_opened"
	TypeCommunicationRequested Type = "communication_requested"
)

// Envelope represents a domain event emitted by services.
type Envelope struct {
	ID        string      `json:"id"`
	Type      Type        `json:"type"`
	EventID   string      `json:"event_id"`
	ActorID   string      `json:"actor_id"`
	ActorRole domain.Role `json:"actor_role"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EventCreatedPayload payload.
type EventCreatedPayload struct {
	Name   string  `json:"name"`
	UnitID *string `json:"unit_id,omitempty"`
	Budget float64 `json:"budget"`
}

// EventStatusChangedPayload payload.
type EventStatusChangedPayload struct {
	OldStatus          domain.EventStatus `json:"old_status"`
	NewStatus          domain.EventStatus `json:"new_status"`
	CancellationReason *string            `json:"cancellation_reason,omitempty"`
}

// TransactionRecordedPayload payload.
type TransactionRecordedPayload struct {
	TransactionID string                 `json:"transaction_id"`
	Amount        float64                `json:"amount"`
	Quantity      int                    `json:"quantity"`
	Type          domain.TransactionType `json:"type"`
}

// RequisitionOpenedPayload payload.
type RequisitionOpenedPayload struct {
	RequisitionID string `json:"requisition_id"`
	Number        int    `json:"number"`
}

// CommunicationRequestedPayload payload.
type CommunicationRequestedPayload struct {
	ItemID     string  `json:"item_id"`
	ServiceID  string  `json:"service_id"`
	OperatorID *string `json:"operator_id,omitempty"`
}
