package domain

import "time"

// TransactionType differentiates money in from money out.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// ValidTransactionType reports whether the value is a known type.
func ValidTransactionType(t TransactionType) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// TransactionStatus enumerates fulfillment states for a line item.
type TransactionStatus string

const (
	TransactionStatusQuotation  TransactionStatus = "QUOTATION"
	TransactionStatusApproved   TransactionStatus = "APPROVED"
	TransactionStatusProduction TransactionStatus = "PRODUCTION"
	TransactionStatusCompleted  TransactionStatus = "COMPLETED"
	TransactionStatusRejected   TransactionStatus = "REJECTED"
)

// ValidTransactionStatus reports whether the value is a known status.
func ValidTransactionStatus(s TransactionStatus) bool {
	switch s {
	case TransactionStatusQuotation, TransactionStatusApproved, TransactionStatusProduction,
		TransactionStatusCompleted, TransactionStatusRejected:
		return true
	}
	return false
}

// Transaction is a single income or expense line item tied to an event
// and optionally grouped under a requisition.
type Transaction struct {
	ID              string
	Description     string
	Amount          float64
	Type            TransactionType
	Status          TransactionStatus
	Quantity        int
	RequisitionNum  *string
	ServiceOrderNum *string
	DeliveryDate    *time.Time
	EventID         string
	RequisitionID   *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
