package services

import (
	"context"
	"testing"

	"bge-backend/internal/ledger"
	"bge-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPayment_ExactAmount_SettlesDebt(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	customer := seedCustomer(t, f, 0)

	_, err := f.orderSvc.CreateOrder(ctx, &models.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []models.LineItemRequest{{Name: "Milo carton", Quantity: 2, UnitPrice: 12500}},
	})
	require.NoError(t, err)

	_, err = f.paymentSvc.RecordPayment(ctx, customer.ID, &models.CreatePaymentRequest{Amount: 25000})
	require.NoError(t, err)

	reloaded, err := f.customerSvc.GetCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Zero(t, reloaded.TotalDebt)
	assert.Zero(t, reloaded.Wallet)
}

func TestRecordPayment_Overpayment_BecomesWallet(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	customer := seedCustomer(t, f, 5000)

	_, err := f.orderSvc.CreateOrder(ctx, &models.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []models.LineItemRequest{{Name: "Indomie carton", Quantity: 4, UnitPrice: 5000}},
	})
	require.NoError(t, err)

	_, err = f.paymentSvc.RecordPayment(ctx, customer.ID, &models.CreatePaymentRequest{Amount: 30000})
	require.NoError(t, err)

	// 30,000 paid against 5,000 legacy + 20,000 orders
	reloaded, err := f.customerSvc.GetCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Zero(t, reloaded.TotalDebt)
	assert.Equal(t, 5000.0, reloaded.Wallet)
}

func TestRecordPayment_RejectsNonPositiveAmount(t *testing.T) {
	f := newFixture()
	customer := seedCustomer(t, f, 0)

	_, err := f.paymentSvc.RecordPayment(context.Background(), customer.ID, &models.CreatePaymentRequest{Amount: 0})
	var ve *ledger.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "amount", ve.Field)
}

func TestUpdatePayment_Reconciles(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	customer := seedCustomer(t, f, 0)

	_, err := f.orderSvc.CreateOrder(ctx, &models.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []models.LineItemRequest{{Name: "Detergent", Quantity: 10, UnitPrice: 1000}},
	})
	require.NoError(t, err)

	payment, err := f.paymentSvc.RecordPayment(ctx, customer.ID, &models.CreatePaymentRequest{Amount: 4000})
	require.NoError(t, err)

	_, err = f.paymentSvc.UpdatePayment(ctx, payment.ID, &models.UpdatePaymentRequest{Amount: 10000, Note: "corrected"})
	require.NoError(t, err)

	reloaded, err := f.customerSvc.GetCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Zero(t, reloaded.TotalDebt)
}

func TestDeletePayment_RestoresDebt(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	customer := seedCustomer(t, f, 0)

	_, err := f.orderSvc.CreateOrder(ctx, &models.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []models.LineItemRequest{{Name: "Tomato paste", Quantity: 6, UnitPrice: 2500}},
	})
	require.NoError(t, err)

	payment, err := f.paymentSvc.RecordPayment(ctx, customer.ID, &models.CreatePaymentRequest{Amount: 15000})
	require.NoError(t, err)

	require.NoError(t, f.paymentSvc.DeletePayment(ctx, payment.ID))

	reloaded, err := f.customerSvc.GetCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 15000.0, reloaded.TotalDebt)
}

func TestGetPayment_UnknownID(t *testing.T) {
	f := newFixture()

	_, err := f.paymentSvc.GetPayment(context.Background(), 42)
	var nf *ledger.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "payment", nf.Entity)
}
