package domain

import "time"

// RequisitionNumberMin and RequisitionNumberMax bound the human-facing
// requisition number. Numbers are assigned randomly within this range and
// are unique across all events, not sequential.
const (
	RequisitionNumberMin = 100000
	RequisitionNumberMax = 999999
)

// Requisition groups transactions under a numbered purchase batch.
type Requisition struct {
	ID           string
	Number       int
	EventID      string
	Transactions []Transaction
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Total returns the aggregated value of the loaded transactions, using the
// same formula as the event spend: amount times quantity, REJECTED rows
// excluded.
func (r *Requisition) Total() float64 {
	var total float64
	for _, tx := range r.Transactions {
		if tx.Status == TransactionStatusRejected {
			continue
		}
		total += tx.Amount * float64(tx.Quantity)
	}
	return total
}
