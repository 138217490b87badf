package services

import (
	"context"
	"testing"

	"bge-backend/internal/ledger"
	"bge-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomer_LegacyDebtSeedsBalance(t *testing.T) {
	f := newFixture()

	customer, err := f.customerSvc.CreateCustomer(context.Background(), &models.CreateCustomerRequest{
		Name:       "Iya Basira",
		Phone:      "08021112233",
		OldBalance: 12000,
	})
	require.NoError(t, err)
	assert.Equal(t, 12000.0, customer.TotalDebt)
	assert.Zero(t, customer.Wallet)
}

func TestCreateCustomer_RequiresNameAndPhone(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.customerSvc.CreateCustomer(ctx, &models.CreateCustomerRequest{Phone: "0800"})
	var ve *ledger.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)

	_, err = f.customerSvc.CreateCustomer(ctx, &models.CreateCustomerRequest{Name: "Chidi"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "phone", ve.Field)
}

func TestUpdateCustomer_OldBalanceChange_Reconciles(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	customer := seedCustomer(t, f, 10000)

	_, err := f.paymentSvc.RecordPayment(ctx, customer.ID, &models.CreatePaymentRequest{Amount: 10000})
	require.NoError(t, err)

	updated, err := f.customerSvc.UpdateCustomer(ctx, customer.ID, &models.UpdateCustomerRequest{
		Name:       customer.Name,
		Phone:      customer.Phone,
		OldBalance: 4000,
	})
	require.NoError(t, err)
	assert.Zero(t, updated.TotalDebt)
	assert.Equal(t, 6000.0, updated.Wallet)
}

func TestGetHistory_BundlesEverything(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	customer := seedCustomer(t, f, 0)

	_, err := f.orderSvc.CreateOrder(ctx, &models.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []models.LineItemRequest{{Name: "Maggi carton", Quantity: 1, UnitPrice: 8000}},
	})
	require.NoError(t, err)
	_, err = f.paymentSvc.RecordPayment(ctx, customer.ID, &models.CreatePaymentRequest{Amount: 3000})
	require.NoError(t, err)
	_, err = f.returnSvc.CreateReturn(ctx, customer.ID, &models.CreateReturnRequest{
		Items: []models.LineItemRequest{{Name: "Maggi carton", Quantity: 1, UnitPrice: 8000}},
	})
	require.NoError(t, err)

	history, err := f.customerSvc.GetHistory(ctx, customer.ID)
	require.NoError(t, err)
	assert.Len(t, history.Orders, 1)
	assert.Len(t, history.Returns, 1)
	assert.Len(t, history.Payments, 1)
	assert.Equal(t, customer.ID, history.Customer.ID)
}

func TestDeleteCustomer_CascadesAndRestoresStock(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	customer := seedCustomer(t, f, 0)
	product := seedProduct(t, f, "Titus sardines", 30)

	order, err := f.orderSvc.CreateOrder(ctx, &models.CreateOrderRequest{
		CustomerID: customer.ID,
		Items: []models.LineItemRequest{
			{Name: product.Name, Quantity: 10, UnitPrice: 1200, ProductID: &product.ID},
		},
	})
	require.NoError(t, err)
	payment, err := f.paymentSvc.RecordPayment(ctx, customer.ID, &models.CreatePaymentRequest{Amount: 5000})
	require.NoError(t, err)
	ret, err := f.returnSvc.CreateReturn(ctx, customer.ID, &models.CreateReturnRequest{
		Items: []models.LineItemRequest{
			{Name: product.Name, Quantity: 2, UnitPrice: 1200, ProductID: &product.ID},
		},
	})
	require.NoError(t, err)

	require.NoError(t, f.customerSvc.DeleteCustomer(ctx, customer.ID))

	_, err = f.customerSvc.GetCustomer(ctx, customer.ID)
	var nf *ledger.NotFoundError
	require.ErrorAs(t, err, &nf)

	_, err = f.orderSvc.GetOrder(ctx, order.ID)
	assert.ErrorAs(t, err, &nf)
	_, err = f.returnSvc.GetReturn(ctx, ret.ID)
	assert.ErrorAs(t, err, &nf)
	_, err = f.paymentSvc.GetPayment(ctx, payment.ID)
	assert.ErrorAs(t, err, &nf)

	// Order deduction of 10 and return addition of 2 both undone.
	stored, err := f.productSvc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 30.0, stored.CurrentStock)
}
