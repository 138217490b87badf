package services

import (
	"context"
	"log"

	"bge-backend/internal/ledger"
	"bge-backend/internal/models"
)

type CustomerService struct {
	Customers CustomerStore
	Orders    OrderStore
	Returns   ReturnStore
	Payments  PaymentStore
	Products  ProductStore
}

func NewCustomerService(customers CustomerStore, orders OrderStore, returns ReturnStore, payments PaymentStore, products ProductStore) *CustomerService {
	return &CustomerService{
		Customers: customers,
		Orders:    orders,
		Returns:   returns,
		Payments:  payments,
		Products:  products,
	}
}

// CreateCustomer registers a customer. OldBalance is legacy debt carried in
// from before the system; the derived balance fields start from it alone.
func (s *CustomerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	if req.Name == "" {
		return nil, &ledger.ValidationError{Field: "name", Message: "name is required"}
	}
	if req.Phone == "" {
		return nil, &ledger.ValidationError{Field: "phone", Message: "phone is required"}
	}

	balance := ledger.Reconcile(req.OldBalance, nil, nil, nil)
	customer := &models.Customer{
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		OldBalance: req.OldBalance,
		TotalDebt:  balance.TotalDebt,
		Wallet:     balance.Wallet,
	}
	if err := s.Customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id int) (*models.Customer, error) {
	customer, err := s.Customers.Get(ctx, id)
	if err != nil {
		return nil, notFound("customer", id, err)
	}
	return customer, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	return s.Customers.List(ctx)
}

// UpdateCustomer edits contact details and the legacy balance. Changing
// OldBalance shifts the whole equation, so the balance is reconciled after.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id int, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.Customers.Get(ctx, id)
	if err != nil {
		return nil, notFound("customer", id, err)
	}
	if req.Name == "" {
		return nil, &ledger.ValidationError{Field: "name", Message: "name is required"}
	}
	if req.Phone == "" {
		return nil, &ledger.ValidationError{Field: "phone", Message: "phone is required"}
	}

	customer.Name = req.Name
	customer.Phone = req.Phone
	customer.Email = req.Email
	customer.Address = req.Address
	customer.OldBalance = req.OldBalance
	if err := s.Customers.Update(ctx, customer); err != nil {
		return nil, err
	}

	balance, err := reconcileCustomer(ctx, s.Customers, s.Orders, s.Returns, s.Payments, id)
	if err != nil {
		return nil, err
	}
	customer.TotalDebt = balance.TotalDebt
	customer.Wallet = balance.Wallet
	return customer, nil
}

// GetHistory bundles the customer with their full order, return and
// payment history for the detail view.
func (s *CustomerService) GetHistory(ctx context.Context, id int) (*models.CustomerHistory, error) {
	customer, err := s.Customers.Get(ctx, id)
	if err != nil {
		return nil, notFound("customer", id, err)
	}

	orders, err := s.Orders.ListByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	returns, err := s.Returns.ListByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	payments, err := s.Payments.ListByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.CustomerHistory{
		Customer: customer,
		Orders:   orders,
		Returns:  returns,
		Payments: payments,
	}, nil
}

// DeleteCustomer removes the customer and everything hanging off them.
// Stock movements their orders and returns caused are reversed first, so
// the warehouse does not keep phantom deductions for erased history.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id int) error {
	customer, err := s.Customers.Get(ctx, id)
	if err != nil {
		return notFound("customer", id, err)
	}

	orders, err := s.Orders.ListByCustomer(ctx, id)
	if err != nil {
		return err
	}
	for _, order := range orders {
		events, err := s.Products.EventsByOrder(ctx, order.ID)
		if err != nil {
			log.Printf("[CustomerService] listing stock events for order %s: %v", order.OrderNumber, err)
			continue
		}
		reverseStockEvents(ctx, s.Products, events, "Reversal for deleted order "+order.OrderNumber, nil)
	}

	returns, err := s.Returns.ListByCustomer(ctx, id)
	if err != nil {
		return err
	}
	for _, ret := range returns {
		events, err := s.Products.EventsByReturn(ctx, ret.ID)
		if err != nil {
			log.Printf("[CustomerService] listing stock events for return %s: %v", ret.ReturnNumber, err)
			continue
		}
		reverseStockEvents(ctx, s.Products, events, "Reversal for deleted return "+ret.ReturnNumber, nil)
	}

	if err := s.Payments.DeleteByCustomer(ctx, id); err != nil {
		return err
	}
	for _, ret := range returns {
		if err := s.Returns.Delete(ctx, ret.ID); err != nil {
			return err
		}
	}
	for _, order := range orders {
		if err := s.Orders.Delete(ctx, order.ID); err != nil {
			return err
		}
	}
	return s.Customers.Delete(ctx, customer.ID)
}
