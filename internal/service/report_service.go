package service

import (
	"context"

	"stockbook/internal/dto"
	"stockbook/internal/ledger"
	"stockbook/internal/model"
	"stockbook/internal/store"
)

// ReportService exposes the derived financial aggregates. Nothing is stored:
// every call recomputes from the full movement history.
type ReportService interface {
	Summary(ctx context.Context, identity string) (*dto.SummaryResponse, error)
	LowStock(ctx context.Context, identity string) ([]dto.ProductBalanceResponse, error)
}

type reportService struct {
	st *store.Store
}

func NewReportService(st *store.Store) ReportService {
	return &reportService{st: st}
}

func (s *reportService) load(ctx context.Context, identity string) ([]model.StockLog, []model.Product, []model.Customer, error) {
	logs, err := s.st.Logs.GetAllOrEmpty(ctx, identity)
	if err != nil {
		return nil, nil, nil, err
	}
	products, err := s.st.Products.GetAllOrEmpty(ctx, identity)
	if err != nil {
		return nil, nil, nil, err
	}
	customers, err := s.st.Customers.GetAllOrEmpty(ctx, identity)
	if err != nil {
		return nil, nil, nil, err
	}
	return logs, products, customers, nil
}

func (s *reportService) Summary(ctx context.Context, identity string) (*dto.SummaryResponse, error) {
	logs, products, customers, err := s.load(ctx, identity)
	if err != nil {
		return nil, err
	}
	return &dto.SummaryResponse{
		InventoryValue:     ledger.InventoryValue(logs, products),
		Revenue:            ledger.Revenue(logs, products),
		Profit:             ledger.Profit(logs, products),
		PendingReceivables: ledger.PendingReceivables(logs, products),
		ProductCount:       len(products),
		CustomerCount:      len(customers),
		MovementCount:      len(logs),
	}, nil
}

func (s *reportService) LowStock(ctx context.Context, identity string) ([]dto.ProductBalanceResponse, error) {
	logs, products, _, err := s.load(ctx, identity)
	if err != nil {
		return nil, err
	}
	low := ledger.LowStock(logs, products)
	out := make([]dto.ProductBalanceResponse, 0, len(low))
	for _, p := range low {
		out = append(out, dto.ProductBalanceResponse{
			ProductID: p.ID,
			Name:      p.Name,
			Balance:   ledger.Balance(logs, p.ID),
			MinStock:  p.MinStock,
			LowStock:  true,
		})
	}
	return out, nil
}
