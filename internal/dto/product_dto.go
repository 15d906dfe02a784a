package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name      string          `json:"name"      validate:"required,min=1,max=120"`
	Category  string          `json:"category"  validate:"required"`
	CostPrice decimal.Decimal `json:"costPrice" validate:"min=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" validate:"min=0"`
	MinStock  int             `json:"minStock"  validate:"min=0"`
}

// UpdateProductRequest is a typed patch: nil fields are left untouched.
type UpdateProductRequest struct {
	Name      *string          `json:"name"      validate:"omitempty,min=1,max=120"`
	Category  *string          `json:"category"`
	CostPrice *decimal.Decimal `json:"costPrice"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
	MinStock  *int             `json:"minStock"  validate:"omitempty,min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ProductBalanceResponse pairs a product with its derived on-hand balance.
type ProductBalanceResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Balance   int    `json:"balance"`
	MinStock  int    `json:"minStock"`
	LowStock  bool   `json:"lowStock"`
}
