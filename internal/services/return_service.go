package services

import (
	"context"
	"log"

	"bge-backend/internal/ledger"
	"bge-backend/internal/models"
)

type ReturnService struct {
	Returns   ReturnStore
	Orders    OrderStore
	Customers CustomerStore
	Payments  PaymentStore
	Products  ProductStore
}

func NewReturnService(returns ReturnStore, orders OrderStore, customers CustomerStore, payments PaymentStore, products ProductStore) *ReturnService {
	return &ReturnService{
		Returns:   returns,
		Orders:    orders,
		Customers: customers,
		Payments:  payments,
		Products:  products,
	}
}

// CreateReturn records merchandise given back by a customer. Warehouse
// tracked lines are added back to stock, and the customer's balance is
// reconciled with the return reducing what they owe.
func (s *ReturnService) CreateReturn(ctx context.Context, customerID int, req *models.CreateReturnRequest) (*models.Return, error) {
	customer, err := s.Customers.Get(ctx, customerID)
	if err != nil {
		return nil, notFound("customer", customerID, err)
	}

	if req.OrderID != nil {
		order, err := s.Orders.Get(ctx, *req.OrderID)
		if err != nil {
			return nil, notFound("order", *req.OrderID, err)
		}
		if order.CustomerID != customer.ID {
			return nil, &ledger.ValidationError{Field: "order_id", Message: "order belongs to a different customer"}
		}
	}

	items, total, err := ledger.BuildItems(req.Items)
	if err != nil {
		return nil, err
	}

	number, err := nextDocumentNumber(ctx, s.Returns, "RET")
	if err != nil {
		return nil, err
	}

	ret := &models.Return{
		CustomerID:   customer.ID,
		OrderID:      req.OrderID,
		ReturnNumber: number,
		Items:        items,
		TotalAmount:  total,
		Reason:       req.Reason,
	}
	if err := s.Returns.Create(ctx, ret); err != nil {
		return nil, err
	}

	s.restockItems(ctx, items, ret.ID, "Return "+number)

	if _, err := reconcileCustomer(ctx, s.Customers, s.Orders, s.Returns, s.Payments, customer.ID); err != nil {
		return nil, err
	}
	return ret, nil
}

// restockItems adds returned warehouse-tracked lines back to stock. The
// return is already stored; a failed addition is logged and skipped.
func (s *ReturnService) restockItems(ctx context.Context, items []models.LineItem, returnID int, reason string) {
	products := make(map[int]*models.Product)
	for _, item := range items {
		if item.ProductID == nil {
			continue
		}
		product, ok := products[*item.ProductID]
		if !ok {
			var err error
			product, err = s.Products.Get(ctx, *item.ProductID)
			if err != nil {
				log.Printf("[ReturnService] product %d not found for restock: %v", *item.ProductID, err)
				continue
			}
			products[*item.ProductID] = product
		}

		ev, err := ledger.ApplyStock(product, models.StockAddition, item.Quantity, reason)
		if err != nil {
			log.Printf("[ReturnService] restock failed for product %d: %v", product.ID, err)
			continue
		}
		ev.ReturnID = &returnID
		if err := s.Products.ApplyEvent(ctx, &ev); err != nil {
			log.Printf("[ReturnService] restock failed for product %d: %v", product.ID, err)
			continue
		}
		product.CurrentStock = ev.NewStock
	}
}

func (s *ReturnService) GetReturn(ctx context.Context, id int) (*models.Return, error) {
	ret, err := s.Returns.Get(ctx, id)
	if err != nil {
		return nil, notFound("return", id, err)
	}
	return ret, nil
}

func (s *ReturnService) ListByCustomer(ctx context.Context, customerID int) ([]*models.Return, error) {
	if _, err := s.Customers.Get(ctx, customerID); err != nil {
		return nil, notFound("customer", customerID, err)
	}
	return s.Returns.ListByCustomer(ctx, customerID)
}

// UpdateReturn replaces the return's line items wholesale, reversing the
// old stock additions and applying the new ones.
func (s *ReturnService) UpdateReturn(ctx context.Context, id int, req *models.UpdateReturnRequest) (*models.Return, error) {
	ret, err := s.Returns.Get(ctx, id)
	if err != nil {
		return nil, notFound("return", id, err)
	}

	items, total, err := ledger.BuildItems(req.Items)
	if err != nil {
		return nil, err
	}

	priorEvents, err := s.Products.EventsByReturn(ctx, ret.ID)
	if err != nil {
		return nil, err
	}
	reverseStockEvents(ctx, s.Products, priorEvents, "Reversal for return "+ret.ReturnNumber,
		func(ev *models.StockEvent) { ev.ReturnID = &ret.ID })

	s.restockItems(ctx, items, ret.ID, "Return "+ret.ReturnNumber)

	ret.Items = items
	ret.TotalAmount = total
	ret.Reason = req.Reason
	if err := s.Returns.ReplaceItems(ctx, ret); err != nil {
		return nil, err
	}

	if _, err := reconcileCustomer(ctx, s.Customers, s.Orders, s.Returns, s.Payments, ret.CustomerID); err != nil {
		return nil, err
	}
	return ret, nil
}

// DeleteReturn removes the return, undoes its stock additions and
// reconciles the customer's balance.
func (s *ReturnService) DeleteReturn(ctx context.Context, id int) error {
	ret, err := s.Returns.Get(ctx, id)
	if err != nil {
		return notFound("return", id, err)
	}

	priorEvents, err := s.Products.EventsByReturn(ctx, ret.ID)
	if err != nil {
		return err
	}
	reverseStockEvents(ctx, s.Products, priorEvents, "Reversal for deleted return "+ret.ReturnNumber, nil)

	if err := s.Returns.Delete(ctx, ret.ID); err != nil {
		return err
	}

	_, err = reconcileCustomer(ctx, s.Customers, s.Orders, s.Returns, s.Payments, ret.CustomerID)
	return err
}
