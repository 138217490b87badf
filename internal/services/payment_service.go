package services

import (
	"context"
	"time"

	"bge-backend/internal/ledger"
	"bge-backend/internal/models"
)

type PaymentService struct {
	Payments  PaymentStore
	Customers CustomerStore
	Orders    OrderStore
	Returns   ReturnStore
}

func NewPaymentService(payments PaymentStore, customers CustomerStore, orders OrderStore, returns ReturnStore) *PaymentService {
	return &PaymentService{
		Payments:  payments,
		Customers: customers,
		Orders:    orders,
		Returns:   returns,
	}
}

// RecordPayment registers money received from a customer. Payments are
// customer-level, never tied to one order; overpaying is fine and the
// surplus becomes wallet credit after reconciliation.
func (s *PaymentService) RecordPayment(ctx context.Context, customerID int, req *models.CreatePaymentRequest) (*models.Payment, error) {
	customer, err := s.Customers.Get(ctx, customerID)
	if err != nil {
		return nil, notFound("customer", customerID, err)
	}
	if req.Amount <= 0 {
		return nil, &ledger.ValidationError{Field: "amount", Message: "amount must be greater than 0"}
	}

	payment := &models.Payment{
		CustomerID: customer.ID,
		Amount:     req.Amount,
		Note:       req.Note,
		PaidAt:     time.Now(),
	}
	if err := s.Payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	if _, err := reconcileCustomer(ctx, s.Customers, s.Orders, s.Returns, s.Payments, customer.ID); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id int) (*models.Payment, error) {
	payment, err := s.Payments.Get(ctx, id)
	if err != nil {
		return nil, notFound("payment", id, err)
	}
	return payment, nil
}

func (s *PaymentService) ListByCustomer(ctx context.Context, customerID int) ([]*models.Payment, error) {
	if _, err := s.Customers.Get(ctx, customerID); err != nil {
		return nil, notFound("customer", customerID, err)
	}
	return s.Payments.ListByCustomer(ctx, customerID)
}

func (s *PaymentService) UpdatePayment(ctx context.Context, id int, req *models.UpdatePaymentRequest) (*models.Payment, error) {
	payment, err := s.Payments.Get(ctx, id)
	if err != nil {
		return nil, notFound("payment", id, err)
	}
	if req.Amount <= 0 {
		return nil, &ledger.ValidationError{Field: "amount", Message: "amount must be greater than 0"}
	}

	payment.Amount = req.Amount
	payment.Note = req.Note
	if err := s.Payments.Update(ctx, payment); err != nil {
		return nil, err
	}

	if _, err := reconcileCustomer(ctx, s.Customers, s.Orders, s.Returns, s.Payments, payment.CustomerID); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) DeletePayment(ctx context.Context, id int) error {
	payment, err := s.Payments.Get(ctx, id)
	if err != nil {
		return notFound("payment", id, err)
	}

	if err := s.Payments.Delete(ctx, payment.ID); err != nil {
		return err
	}

	_, err = reconcileCustomer(ctx, s.Customers, s.Orders, s.Returns, s.Payments, payment.CustomerID)
	return err
}
