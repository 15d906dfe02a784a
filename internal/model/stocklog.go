package model

// Movement types.
const (
	MovementIn  = "IN"  // supplier receipt
	MovementOut = "OUT" // sale
)

// Payment states for OUT movements. Transitions are one-directional:
// PENDING → PAID via an explicit mark-paid action.
const (
	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"
)

// StockLog is one append-only inventory movement. The log history is the only
// source of truth for stock quantities. CustomerID and PaymentStatus are only
// meaningful on OUT movements; IN movements have no payment state.
type StockLog struct {
	ID            string `json:"id"`
	ProductID     string `json:"productId"`
	Quantity      int    `json:"quantity"`
	Type          string `json:"type"`
	Date          string `json:"date"` // RFC3339, assigned at creation
	CustomerID    string `json:"customerId,omitempty"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
}

func (l StockLog) RecordID() string { return l.ID }
