package service

import (
	"context"

	"github.com/google/uuid"

	"stockbook/internal/dto"
	"stockbook/internal/model"
	"stockbook/internal/store"
)

// CustomerService defines CRUD over the customer collection. Deleting a
// customer intentionally leaves its id dangling in the movement log — history
// survives the customer.
type CustomerService interface {
	List(ctx context.Context, identity string) ([]model.Customer, error)
	Create(ctx context.Context, identity string, req dto.CreateCustomerRequest) (*model.Customer, error)
	Update(ctx context.Context, identity, id string, req dto.UpdateCustomerRequest) (*model.Customer, error)
	Delete(ctx context.Context, identity, id string) error
}

type customerService struct {
	st *store.Store
}

func NewCustomerService(st *store.Store) CustomerService {
	return &customerService{st: st}
}

func (s *customerService) List(ctx context.Context, identity string) ([]model.Customer, error) {
	return s.st.Customers.GetAllOrEmpty(ctx, identity)
}

func (s *customerService) Create(ctx context.Context, identity string, req dto.CreateCustomerRequest) (*model.Customer, error) {
	c := model.Customer{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}
	s.st.Lock()
	defer s.st.Unlock()
	if err := s.st.Customers.Append(ctx, identity, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *customerService) Update(ctx context.Context, identity, id string, req dto.UpdateCustomerRequest) (*model.Customer, error) {
	s.st.Lock()
	defer s.st.Unlock()

	var updated model.Customer
	found, err := s.st.Customers.Update(ctx, identity, id, func(c *model.Customer) {
		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.Phone != nil {
			c.Phone = *req.Phone
		}
		if req.Email != nil {
			c.Email = *req.Email
		}
		if req.Address != nil {
			c.Address = *req.Address
		}
		updated = *c
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, store.ErrNotFound
	}
	return &updated, nil
}

func (s *customerService) Delete(ctx context.Context, identity, id string) error {
	s.st.Lock()
	defer s.st.Unlock()
	// Idempotent: deleting an absent id is not an error.
	_, err := s.st.Customers.Delete(ctx, identity, id)
	return err
}
