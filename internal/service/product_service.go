package service

import (
	"context"

	"github.com/google/uuid"

	"stockbook/internal/dto"
	"stockbook/internal/ledger"
	"stockbook/internal/model"
	"stockbook/internal/store"
)

type ProductService interface {
	List(ctx context.Context, identity string) ([]model.Product, error)
	Create(ctx context.Context, identity string, req dto.CreateProductRequest) (*model.Product, error)
	Update(ctx context.Context, identity, id string, req dto.UpdateProductRequest) (*model.Product, error)
	Delete(ctx context.Context, identity, id string) error
	Balance(ctx context.Context, identity, id string) (*dto.ProductBalanceResponse, error)
}

type productService struct {
	st *store.Store
}

func NewProductService(st *store.Store) ProductService {
	return &productService{st: st}
}

func (s *productService) List(ctx context.Context, identity string) ([]model.Product, error) {
	return s.st.Products.GetAllOrEmpty(ctx, identity)
}

func (s *productService) Create(ctx context.Context, identity string, req dto.CreateProductRequest) (*model.Product, error) {
	p := model.Product{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Category:  req.Category,
		CostPrice: req.CostPrice,
		UnitPrice: req.UnitPrice,
		MinStock:  req.MinStock,
	}
	s.st.Lock()
	defer s.st.Unlock()
	if err := s.st.Products.Append(ctx, identity, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *productService) Update(ctx context.Context, identity, id string, req dto.UpdateProductRequest) (*model.Product, error) {
	s.st.Lock()
	defer s.st.Unlock()

	var updated model.Product
	found, err := s.st.Products.Update(ctx, identity, id, func(p *model.Product) {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.CostPrice != nil {
			p.CostPrice = *req.CostPrice
		}
		if req.UnitPrice != nil {
			p.UnitPrice = *req.UnitPrice
		}
		if req.MinStock != nil {
			p.MinStock = *req.MinStock
		}
		updated = *p
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, store.ErrNotFound
	}
	return &updated, nil
}

func (s *productService) Delete(ctx context.Context, identity, id string) error {
	s.st.Lock()
	defer s.st.Unlock()
	// Movement history referencing the product stays; readers resolve the
	// dangling id to "Unknown"/zero price.
	_, err := s.st.Products.Delete(ctx, identity, id)
	return err
}

func (s *productService) Balance(ctx context.Context, identity, id string) (*dto.ProductBalanceResponse, error) {
	products, err := s.st.Products.GetAllOrEmpty(ctx, identity)
	if err != nil {
		return nil, err
	}
	var product *model.Product
	for i := range products {
		if products[i].ID == id {
			product = &products[i]
			break
		}
	}
	if product == nil {
		return nil, store.ErrNotFound
	}
	logs, err := s.st.Logs.GetAllOrEmpty(ctx, identity)
	if err != nil {
		return nil, err
	}
	bal := ledger.Balance(logs, id)
	return &dto.ProductBalanceResponse{
		ProductID: id,
		Name:      product.Name,
		Balance:   bal,
		MinStock:  product.MinStock,
		LowStock:  bal < product.MinStock,
	}, nil
}
