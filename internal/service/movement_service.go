package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"stockbook/internal/dto"
	"stockbook/internal/ledger"
	"stockbook/internal/model"
	"stockbook/internal/store"
)

// ErrNotSale marks a payment-state operation on a movement that has no
// payment state (IN movements).
var ErrNotSale = errors.New("movement is not a sale")

// MovementService manages the append-only stock log. Stock insufficiency is
// a hard invariant here: an OUT movement larger than the derived balance is
// rejected, uniformly, for every caller.
type MovementService interface {
	List(ctx context.Context, identity string) ([]model.StockLog, error)
	Create(ctx context.Context, identity string, req dto.CreateLogRequest) (*model.StockLog, error)
	Delete(ctx context.Context, identity, id string) error
	MarkPaid(ctx context.Context, identity, id string) (*model.StockLog, error)
}

type movementService struct {
	st *store.Store
}

func NewMovementService(st *store.Store) MovementService {
	return &movementService{st: st}
}

func (s *movementService) List(ctx context.Context, identity string) ([]model.StockLog, error) {
	return s.st.Logs.GetAllOrEmpty(ctx, identity)
}

func (s *movementService) Create(ctx context.Context, identity string, req dto.CreateLogRequest) (*model.StockLog, error) {
	// Lock across the balance check and the append so two concurrent sales
	// cannot both pass the check against the same stock.
	s.st.Lock()
	defer s.st.Unlock()

	l := model.StockLog{
		ID:        uuid.NewString(),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Type:      req.Type,
		Date:      time.Now().UTC().Format(time.RFC3339),
	}

	if req.Type == model.MovementOut {
		logs, err := s.st.Logs.GetAllOrEmpty(ctx, identity)
		if err != nil {
			return nil, err
		}
		if ledger.Balance(logs, req.ProductID) < req.Quantity {
			return nil, store.ErrInsufficientStock
		}
		l.CustomerID = req.CustomerID
		l.PaymentStatus = req.PaymentStatus
		if l.PaymentStatus == "" {
			l.PaymentStatus = model.PaymentPending
		}
	}

	if err := s.st.Logs.Append(ctx, identity, l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *movementService) Delete(ctx context.Context, identity, id string) error {
	s.st.Lock()
	defer s.st.Unlock()
	_, err := s.st.Logs.Delete(ctx, identity, id)
	return err
}

// MarkPaid transitions a sale from PENDING to PAID. The transition is
// one-directional and idempotent: marking an already-paid sale changes
// nothing.
func (s *movementService) MarkPaid(ctx context.Context, identity, id string) (*model.StockLog, error) {
	s.st.Lock()
	defer s.st.Unlock()

	logs, err := s.st.Logs.GetAllOrEmpty(ctx, identity)
	if err != nil {
		return nil, err
	}
	var target *model.StockLog
	for i := range logs {
		if logs[i].ID == id {
			target = &logs[i]
			break
		}
	}
	if target == nil {
		return nil, store.ErrNotFound
	}
	if target.Type != model.MovementOut {
		return nil, ErrNotSale
	}
	if target.PaymentStatus == model.PaymentPaid {
		return target, nil
	}
	target.PaymentStatus = model.PaymentPaid
	if err := s.st.Logs.Replace(ctx, identity, logs); err != nil {
		return nil, err
	}
	return target, nil
}
