package domain

import "time"

// Operator is a person or agency fulfilling communication requests.
// The list is global, not unit-scoped.
type Operator struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Service is a catalog entry for a communication/marketing service type.
type Service struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
