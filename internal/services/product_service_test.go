package services

import (
	"context"
	"testing"

	"bge-backend/internal/ledger"
	"bge-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct_OpeningStockRecorded(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	product, err := f.productSvc.CreateProduct(ctx, &models.CreateProductRequest{
		Name:         "Rice 50kg",
		Unit:         "bag",
		CurrentStock: 25,
		UnitPrice:    52000,
	})
	require.NoError(t, err)
	assert.Equal(t, 25.0, product.CurrentStock)
	assert.True(t, product.IsActive)

	history, err := f.productSvc.GetHistory(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.StockAddition, history[0].Type)
	assert.Equal(t, "Opening stock", history[0].Reason)
	assert.Zero(t, history[0].PreviousStock)
	assert.Equal(t, 25.0, history[0].NewStock)
}

func TestCreateProduct_DuplicateName_CaseInsensitive(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	seedProduct(t, f, "Palm Oil 25L", 5)

	_, err := f.productSvc.CreateProduct(ctx, &models.CreateProductRequest{
		Name: "palm oil 25l",
		Unit: "can",
	})
	var ve *ledger.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)
}

func TestMutateStock_AdjustmentSetsTarget(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	product := seedProduct(t, f, "Beans 25kg", 12)

	updated, err := f.productSvc.MutateStock(ctx, product.ID, &models.StockMutationRequest{
		Type:     models.StockAdjustment,
		Quantity: 7,
		Reason:   "Count after spillage",
	})
	require.NoError(t, err)
	assert.Equal(t, 7.0, updated.CurrentStock)

	history, err := f.productSvc.GetHistory(ctx, product.ID)
	require.NoError(t, err)
	last := history[len(history)-1]
	assert.Equal(t, models.StockAdjustment, last.Type)
	assert.Equal(t, 5.0, last.Quantity)
	assert.Equal(t, 12.0, last.PreviousStock)
	assert.Equal(t, 7.0, last.NewStock)
}

func TestMutateStock_DeductionBeyondStock_Rejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	product := seedProduct(t, f, "Sugar 50kg", 3)

	_, err := f.productSvc.MutateStock(ctx, product.ID, &models.StockMutationRequest{
		Type:     models.StockDeduction,
		Quantity: 4,
	})
	var insufficient *ledger.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)

	stored, err := f.productSvc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.0, stored.CurrentStock)
}

func TestUpdateProduct_StockNotEditable(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	product := seedProduct(t, f, "Flour 50kg", 9)

	price := 31000.0
	updated, err := f.productSvc.UpdateProduct(ctx, product.ID, &models.UpdateProductRequest{
		UnitPrice: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, 31000.0, updated.UnitPrice)
	assert.Equal(t, 9.0, updated.CurrentStock)
}

func TestDeleteProduct_WithOrderHistory_DeactivatesInstead(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	customer := seedCustomer(t, f, 0)
	product := seedProduct(t, f, "Semovita 10kg", 20)

	_, err := f.orderSvc.CreateOrder(ctx, &models.CreateOrderRequest{
		CustomerID: customer.ID,
		Items: []models.LineItemRequest{
			{Name: product.Name, Quantity: 1, UnitPrice: 7500, ProductID: &product.ID},
		},
	})
	require.NoError(t, err)

	require.NoError(t, f.productSvc.DeleteProduct(ctx, product.ID))

	stored, err := f.productSvc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}

func TestDeleteProduct_Unreferenced_Removed(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	product := seedProduct(t, f, "Cabin biscuits", 4)

	require.NoError(t, f.productSvc.DeleteProduct(ctx, product.ID))

	_, err := f.productSvc.GetProduct(ctx, product.ID)
	var nf *ledger.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestListLowStock(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	low, err := f.productSvc.CreateProduct(ctx, &models.CreateProductRequest{
		Name: "Matches", Unit: "pack", CurrentStock: 2, LowStockThreshold: 5,
	})
	require.NoError(t, err)
	_, err = f.productSvc.CreateProduct(ctx, &models.CreateProductRequest{
		Name: "Candles", Unit: "pack", CurrentStock: 50, LowStockThreshold: 5,
	})
	require.NoError(t, err)

	products, err := f.productSvc.ListLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, low.ID, products[0].ID)
}
