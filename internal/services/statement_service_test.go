package services

import (
	"context"
	"testing"
	"unicode/utf8"

	"bge-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatementFixture(f *fixture) *StatementService {
	return NewStatementService(f.customers, f.orders, f.returns, f.payments, f.expenses, Letterhead{
		Name:    "Ben Global Enterprises",
		Address: "12 Ojo Alaba Market Road, Lagos",
		Phone:   "08030000000",
	})
}

func TestGenerateStatement_ProducesPDF(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	customer := seedCustomer(t, f, 5000)

	_, err := f.orderSvc.CreateOrder(ctx, &models.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []models.LineItemRequest{{Name: "Rice 50kg", Quantity: 2, UnitPrice: 52000}},
	})
	require.NoError(t, err)
	_, err = f.paymentSvc.RecordPayment(ctx, customer.ID, &models.CreatePaymentRequest{Amount: 50000, Note: "Transfer"})
	require.NoError(t, err)
	_, err = f.returnSvc.CreateReturn(ctx, customer.ID, &models.CreateReturnRequest{
		Items:  []models.LineItemRequest{{Name: "Rice 50kg", Quantity: 1, UnitPrice: 52000}},
		Reason: "Weevils in one bag",
	})
	require.NoError(t, err)

	svc := newStatementFixture(f)
	pdf, err := svc.GenerateStatement(ctx, customer.ID)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGenerateStatement_EmptyHistoryStillRenders(t *testing.T) {
	f := newFixture()
	customer := seedCustomer(t, f, 0)

	svc := newStatementFixture(f)
	pdf, err := svc.GenerateStatement(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestTruncate_MultibyteSafe(t *testing.T) {
	long := "Ilé-Ifẹ̀ market road, off Ọbáfẹ́mi Awólọ́wọ̀ way, Ọ̀ṣun"

	short := truncate(long, 20)
	assert.True(t, utf8.ValidString(short))
	assert.Equal(t, 20, utf8.RuneCountInString(short))

	assert.Equal(t, "Lagos", truncate("Lagos", 20))
}

func TestGenerateExpenseReport_ProducesPDF(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.expenseSvc.RecordExpense(ctx, &models.CreateExpenseRequest{
		Amount: 25000, Description: "Shop rent", Category: models.ExpenseCategoryOperating,
	})
	require.NoError(t, err)

	svc := newStatementFixture(f)
	pdf, err := svc.GenerateExpenseReport(ctx, models.ExpenseFilter{})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
