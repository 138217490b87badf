package services

import (
	"context"
	"log"

	"bge-backend/internal/ledger"
	"bge-backend/internal/models"
)

type OrderService struct {
	Orders    OrderStore
	Customers CustomerStore
	Returns   ReturnStore
	Payments  PaymentStore
	Products  ProductStore
}

func NewOrderService(orders OrderStore, customers CustomerStore, returns ReturnStore, payments PaymentStore, products ProductStore) *OrderService {
	return &OrderService{
		Orders:    orders,
		Customers: customers,
		Returns:   returns,
		Payments:  payments,
		Products:  products,
	}
}

// CreateOrder records a credit order. Stock for warehouse-tracked lines is
// checked and deducted before anything is persisted against the customer;
// an insufficient line aborts the whole order. The customer's balance is
// reconciled afterwards and any wallet credit the order absorbed is
// recorded on the order.
func (s *OrderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	customer, err := s.Customers.Get(ctx, req.CustomerID)
	if err != nil {
		return nil, notFound("customer", req.CustomerID, err)
	}

	items, total, err := ledger.BuildItems(req.Items)
	if err != nil {
		return nil, err
	}

	number, err := nextDocumentNumber(ctx, s.Orders, "ORD")
	if err != nil {
		return nil, err
	}

	events, err := s.deductionEvents(ctx, make(map[int]*models.Product), items, "Order "+number)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		CustomerID:  customer.ID,
		OrderNumber: number,
		Items:       items,
		TotalAmount: total,
	}
	if err := s.Orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.applyEvents(ctx, events, order.ID)

	walletBefore := customer.Wallet
	balance, err := reconcileCustomer(ctx, s.Customers, s.Orders, s.Returns, s.Payments, customer.ID)
	if err != nil {
		return nil, err
	}

	if used := walletBefore - balance.Wallet; used > 0 {
		if err := s.Orders.SetWalletUsed(ctx, order.ID, used); err != nil {
			return nil, err
		}
		order.WalletUsed = used
	}
	return order, nil
}

// deductionEvents builds the stock deductions an order's warehouse-tracked
// lines require. Nothing is persisted here; a line exceeding current stock
// fails the whole batch. Products read through the shared cache carry the
// simulated level forward, so repeated lines against the same product
// deduct cumulatively and callers can pre-seed the cache with staged
// reversals.
func (s *OrderService) deductionEvents(ctx context.Context, cache map[int]*models.Product, items []models.LineItem, reason string) ([]models.StockEvent, error) {
	var events []models.StockEvent
	for _, item := range items {
		if item.ProductID == nil {
			continue
		}
		product, err := cachedProduct(ctx, s.Products, cache, *item.ProductID)
		if err != nil {
			return nil, notFound("product", *item.ProductID, err)
		}

		ev, err := ledger.ApplyStock(product, models.StockDeduction, item.Quantity, reason)
		if err != nil {
			return nil, err
		}
		product.CurrentStock = ev.NewStock
		events = append(events, ev)
	}
	return events, nil
}

// applyEvents persists deduction events with the order reference. The order
// itself is already stored at this point; a failed event is logged and
// skipped so the books stay correct even when inventory drifts.
func (s *OrderService) applyEvents(ctx context.Context, events []models.StockEvent, orderID int) {
	for i := range events {
		events[i].OrderID = &orderID
		if err := s.Products.ApplyEvent(ctx, &events[i]); err != nil {
			log.Printf("[OrderService] stock apply failed for product %d: %v", events[i].ProductID, err)
		}
	}
}

func (s *OrderService) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	order, err := s.Orders.Get(ctx, id)
	if err != nil {
		return nil, notFound("order", id, err)
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]*models.OrderWithCustomer, error) {
	return s.Orders.List(ctx)
}

func (s *OrderService) ListByCustomer(ctx context.Context, customerID int) ([]*models.Order, error) {
	if _, err := s.Customers.Get(ctx, customerID); err != nil {
		return nil, notFound("customer", customerID, err)
	}
	return s.Orders.ListByCustomer(ctx, customerID)
}

// UpdateOrder replaces the order's line items wholesale. Stock effects of
// the old items are reversed first, then the new items are applied as if
// the order were created fresh, and the balance is reconciled.
func (s *OrderService) UpdateOrder(ctx context.Context, id int, req *models.UpdateOrderRequest) (*models.Order, error) {
	order, err := s.Orders.Get(ctx, id)
	if err != nil {
		return nil, notFound("order", id, err)
	}

	items, total, err := ledger.BuildItems(req.Items)
	if err != nil {
		return nil, err
	}

	customer, err := s.Customers.Get(ctx, order.CustomerID)
	if err != nil {
		return nil, notFound("customer", order.CustomerID, err)
	}

	priorEvents, err := s.Products.EventsByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	// Stage the reversal of the old items and the deductions for the new
	// ones in memory first. A rejected edit must leave stock untouched, so
	// nothing is persisted until the whole edit is known to go through.
	cache := make(map[int]*models.Product)
	staged := stageReversals(ctx, s.Products, cache, priorEvents, "Reversal for order "+order.OrderNumber,
		func(ev *models.StockEvent) { ev.OrderID = &order.ID })

	deductions, err := s.deductionEvents(ctx, cache, items, "Order "+order.OrderNumber)
	if err != nil {
		return nil, err
	}
	staged = append(staged, deductions...)
	s.applyEvents(ctx, staged, order.ID)

	order.Items = items
	order.TotalAmount = total
	if err := s.Orders.ReplaceItems(ctx, order); err != nil {
		return nil, err
	}

	walletBefore := customer.Wallet
	balance, err := reconcileCustomer(ctx, s.Customers, s.Orders, s.Returns, s.Payments, order.CustomerID)
	if err != nil {
		return nil, err
	}

	used := walletBefore - balance.Wallet
	if used < 0 {
		used = 0
	}
	if err := s.Orders.SetWalletUsed(ctx, order.ID, used); err != nil {
		return nil, err
	}
	order.WalletUsed = used
	return order, nil
}

// DeleteOrder removes the order, undoes its stock deductions and
// reconciles the customer's balance.
func (s *OrderService) DeleteOrder(ctx context.Context, id int) error {
	order, err := s.Orders.Get(ctx, id)
	if err != nil {
		return notFound("order", id, err)
	}

	priorEvents, err := s.Products.EventsByOrder(ctx, order.ID)
	if err != nil {
		return err
	}
	reverseStockEvents(ctx, s.Products, priorEvents, "Reversal for deleted order "+order.OrderNumber, nil)

	if err := s.Orders.Delete(ctx, order.ID); err != nil {
		return err
	}

	_, err = reconcileCustomer(ctx, s.Customers, s.Orders, s.Returns, s.Payments, order.CustomerID)
	return err
}
