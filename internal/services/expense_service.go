package services

import (
	"context"
	"time"

	"bge-backend/internal/ledger"
	"bge-backend/internal/models"
)

type ExpenseService struct {
	Expenses ExpenseStore
}

func NewExpenseService(expenses ExpenseStore) *ExpenseService {
	return &ExpenseService{Expenses: expenses}
}

func validExpenseCategory(category string) bool {
	switch category {
	case models.ExpenseCategoryOperating, models.ExpenseCategoryInventory,
		models.ExpenseCategoryTax, models.ExpenseCategoryLabourTransport,
		models.ExpenseCategoryOther:
		return true
	}
	return false
}

func (s *ExpenseService) RecordExpense(ctx context.Context, req *models.CreateExpenseRequest) (*models.Expense, error) {
	if req.Amount <= 0 {
		return nil, &ledger.ValidationError{Field: "amount", Message: "amount must be greater than 0"}
	}
	if req.Description == "" {
		return nil, &ledger.ValidationError{Field: "description", Message: "description is required"}
	}
	if !validExpenseCategory(req.Category) {
		return nil, &ledger.ValidationError{Field: "category", Message: "unknown expense category"}
	}
	if req.VATAmount < 0 {
		return nil, &ledger.ValidationError{Field: "vat_amount", Message: "VAT cannot be negative"}
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	expense := &models.Expense{
		Date:            date,
		Amount:          req.Amount,
		Category:        req.Category,
		Description:     req.Description,
		PaymentMethod:   req.PaymentMethod,
		ReceiptNumber:   req.ReceiptNumber,
		VendorName:      req.VendorName,
		VendorContact:   req.VendorContact,
		VATAmount:       req.VATAmount,
		IsTaxDeductible: req.IsTaxDeductible,
	}
	if err := s.Expenses.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) GetExpense(ctx context.Context, id int) (*models.Expense, error) {
	expense, err := s.Expenses.Get(ctx, id)
	if err != nil {
		return nil, notFound("expense", id, err)
	}
	return expense, nil
}

func (s *ExpenseService) ListExpenses(ctx context.Context, f models.ExpenseFilter) ([]*models.Expense, error) {
	return s.Expenses.List(ctx, f)
}

func (s *ExpenseService) Summarize(ctx context.Context, f models.ExpenseFilter) (*models.ExpenseSummary, error) {
	return s.Expenses.Summary(ctx, f)
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, id int, req *models.CreateExpenseRequest) (*models.Expense, error) {
	expense, err := s.Expenses.Get(ctx, id)
	if err != nil {
		return nil, notFound("expense", id, err)
	}
	if req.Amount <= 0 {
		return nil, &ledger.ValidationError{Field: "amount", Message: "amount must be greater than 0"}
	}
	if !validExpenseCategory(req.Category) {
		return nil, &ledger.ValidationError{Field: "category", Message: "unknown expense category"}
	}

	expense.Date = req.Date
	expense.Amount = req.Amount
	expense.Category = req.Category
	expense.Description = req.Description
	expense.PaymentMethod = req.PaymentMethod
	expense.ReceiptNumber = req.ReceiptNumber
	expense.VendorName = req.VendorName
	expense.VendorContact = req.VendorContact
	expense.VATAmount = req.VATAmount
	expense.IsTaxDeductible = req.IsTaxDeductible
	if err := s.Expenses.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, id int) error {
	if _, err := s.Expenses.Get(ctx, id); err != nil {
		return notFound("expense", id, err)
	}
	return s.Expenses.Delete(ctx, id)
}
