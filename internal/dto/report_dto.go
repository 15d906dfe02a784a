package dto

import "github.com/shopspring/decimal"

// SummaryResponse carries the dashboard aggregates, all derived on demand
// from the movement log.
type SummaryResponse struct {
	InventoryValue     decimal.Decimal `json:"inventoryValue"`
	Revenue            decimal.Decimal `json:"revenue"`
	Profit             decimal.Decimal `json:"profit"`
	PendingReceivables decimal.Decimal `json:"pendingReceivables"`
	ProductCount       int             `json:"productCount"`
	CustomerCount      int             `json:"customerCount"`
	MovementCount      int             `json:"movementCount"`
}
