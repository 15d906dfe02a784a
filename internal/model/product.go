package model

import "github.com/shopspring/decimal"

func init() {
	// Backup documents carry prices as plain JSON numbers; keep that shape
	// instead of decimal's default quoted strings so old exports round-trip.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a catalog entry. There is no stored stock quantity — on-hand
// balance is always derived from the movement log (see internal/ledger).
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	CostPrice decimal.Decimal `json:"costPrice"`
	UnitPrice decimal.Decimal `json:"unitPrice"` // selling price
	MinStock  int             `json:"minStock"`  // low-stock alert threshold, not an enforced floor
}

func (p Product) RecordID() string { return p.ID }
