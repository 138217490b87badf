package services

import (
	"context"
	"errors"

	"bge-backend/internal/ledger"
	"bge-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

type ProductService struct {
	Products ProductStore
}

func NewProductService(products ProductStore) *ProductService {
	return &ProductService{Products: products}
}

// CreateProduct registers a warehouse product. Names are unique
// case-insensitively; the opening stock is recorded as the first event in
// the product's history.
func (s *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, &ledger.ValidationError{Field: "name", Message: "name is required"}
	}
	if req.CurrentStock < 0 {
		return nil, &ledger.ValidationError{Field: "current_stock", Message: "opening stock cannot be negative"}
	}
	if req.UnitPrice < 0 {
		return nil, &ledger.ValidationError{Field: "unit_price", Message: "unit price cannot be negative"}
	}

	existing, err := s.Products.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, &ledger.ValidationError{Field: "name", Message: "a product with this name already exists"}
	}

	product := &models.Product{
		Name:              req.Name,
		Unit:              req.Unit,
		UnitPrice:         req.UnitPrice,
		LowStockThreshold: req.LowStockThreshold,
		Description:       req.Description,
		Category:          req.Category,
		IsActive:          true,
	}
	if err := s.Products.Create(ctx, product); err != nil {
		return nil, err
	}

	if req.CurrentStock > 0 {
		ev, err := ledger.ApplyStock(product, models.StockAddition, req.CurrentStock, "Opening stock")
		if err != nil {
			return nil, err
		}
		if err := s.Products.ApplyEvent(ctx, &ev); err != nil {
			return nil, err
		}
		product.CurrentStock = ev.NewStock
	}
	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	product, err := s.Products.Get(ctx, id)
	if err != nil {
		return nil, notFound("product", id, err)
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context, search string, activeOnly bool) ([]*models.Product, error) {
	return s.Products.List(ctx, search, activeOnly)
}

func (s *ProductService) ListLowStock(ctx context.Context) ([]*models.Product, error) {
	return s.Products.ListLowStock(ctx)
}

// UpdateProduct edits product details. Stock is deliberately not editable
// here; it only moves through MutateStock so the history stays complete.
func (s *ProductService) UpdateProduct(ctx context.Context, id int, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.Products.Get(ctx, id)
	if err != nil {
		return nil, notFound("product", id, err)
	}

	if req.Name != "" && req.Name != product.Name {
		existing, err := s.Products.GetByName(ctx, req.Name)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, &ledger.ValidationError{Field: "name", Message: "a product with this name already exists"}
		}
		product.Name = req.Name
	}
	if req.Unit != "" {
		product.Unit = req.Unit
	}
	if req.UnitPrice != nil {
		if *req.UnitPrice < 0 {
			return nil, &ledger.ValidationError{Field: "unit_price", Message: "unit price cannot be negative"}
		}
		product.UnitPrice = *req.UnitPrice
	}
	if req.LowStockThreshold != nil {
		product.LowStockThreshold = *req.LowStockThreshold
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.Products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// MutateStock applies a manual stock movement and appends it to the
// product's history. For adjustments the request quantity is the target
// level, not a delta.
func (s *ProductService) MutateStock(ctx context.Context, id int, req *models.StockMutationRequest) (*models.Product, error) {
	product, err := s.Products.Get(ctx, id)
	if err != nil {
		return nil, notFound("product", id, err)
	}

	ev, err := ledger.ApplyStock(product, req.Type, req.Quantity, req.Reason)
	if err != nil {
		return nil, err
	}
	if err := s.Products.ApplyEvent(ctx, &ev); err != nil {
		return nil, err
	}
	product.CurrentStock = ev.NewStock
	return product, nil
}

// GetHistory returns the product's full stock event history, oldest first
func (s *ProductService) GetHistory(ctx context.Context, id int) ([]*models.StockEvent, error) {
	if _, err := s.Products.Get(ctx, id); err != nil {
		return nil, notFound("product", id, err)
	}
	return s.Products.History(ctx, id)
}

// DeleteProduct removes a product that no order has ever referenced.
// Products with order history are deactivated instead, so old orders keep
// resolving their line references.
func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	product, err := s.Products.Get(ctx, id)
	if err != nil {
		return notFound("product", id, err)
	}

	used, err := s.Products.UsedInOrders(ctx, id)
	if err != nil {
		return err
	}
	if used {
		product.IsActive = false
		return s.Products.Update(ctx, product)
	}
	return s.Products.Delete(ctx, id)
}
