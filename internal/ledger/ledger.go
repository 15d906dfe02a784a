// Package ledger derives inventory balances and financial aggregates from the
// movement-log history. Everything here is a pure function over
// (logs, products): nothing is cached, nothing is stored — balances are
// recomputed on every read. O(n) per call is fine at this data volume.
package ledger

import (
	"github.com/shopspring/decimal"

	"stockbook/internal/model"
)

// Balance is the on-hand quantity for a product: Σ IN quantities minus Σ OUT
// quantities over its movements. Order of the log slice does not matter.
// Negative balances are representable (legacy data predates the uniform
// insufficiency check).
func Balance(logs []model.StockLog, productID string) int {
	bal := 0
	for _, l := range logs {
		if l.ProductID != productID {
			continue
		}
		switch l.Type {
		case model.MovementIn:
			bal += l.Quantity
		case model.MovementOut:
			bal -= l.Quantity
		}
	}
	return bal
}

// InventoryValue is Σ over products of balance × cost price.
func InventoryValue(logs []model.StockLog, products []model.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		bal := decimal.NewFromInt(int64(Balance(logs, p.ID)))
		total = total.Add(bal.Mul(p.CostPrice))
	}
	return total
}

// Revenue is Σ over OUT movements of quantity × unit price. A movement whose
// product was deleted contributes zero — dangling references degrade
// silently, they are not errors.
func Revenue(logs []model.StockLog, products []model.Product) decimal.Decimal {
	idx := indexProducts(products)
	total := decimal.Zero
	for _, l := range logs {
		if l.Type != model.MovementOut {
			continue
		}
		p, ok := idx[l.ProductID]
		if !ok {
			continue
		}
		total = total.Add(p.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// Profit is Σ over OUT movements of quantity × (unit price − cost price).
func Profit(logs []model.StockLog, products []model.Product) decimal.Decimal {
	idx := indexProducts(products)
	total := decimal.Zero
	for _, l := range logs {
		if l.Type != model.MovementOut {
			continue
		}
		p, ok := idx[l.ProductID]
		if !ok {
			continue
		}
		margin := p.UnitPrice.Sub(p.CostPrice)
		total = total.Add(margin.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// PendingReceivables is Σ over unpaid OUT movements of quantity × unit price.
func PendingReceivables(logs []model.StockLog, products []model.Product) decimal.Decimal {
	idx := indexProducts(products)
	total := decimal.Zero
	for _, l := range logs {
		if l.Type != model.MovementOut || l.PaymentStatus != model.PaymentPending {
			continue
		}
		p, ok := idx[l.ProductID]
		if !ok {
			continue
		}
		total = total.Add(p.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// LowStock returns the products whose balance is below their minStock
// threshold.
func LowStock(logs []model.StockLog, products []model.Product) []model.Product {
	var low []model.Product
	for _, p := range products {
		if Balance(logs, p.ID) < p.MinStock {
			low = append(low, p)
		}
	}
	return low
}

func indexProducts(products []model.Product) map[string]model.Product {
	idx := make(map[string]model.Product, len(products))
	for _, p := range products {
		idx[p.ID] = p
	}
	return idx
}
