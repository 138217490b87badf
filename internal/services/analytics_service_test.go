package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"bge-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyticsFixture(f *fixture) *AnalyticsService {
	return NewAnalyticsService(f.customers, f.orders, f.payments, f.products, f.expenses)
}

func TestDashboard_Rollups(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	debtor := seedCustomer(t, f, 0)
	settled, err := f.customerSvc.CreateCustomer(ctx, &models.CreateCustomerRequest{
		Name:  "Oga Emeka",
		Phone: "08079998888",
	})
	require.NoError(t, err)

	_, err = f.orderSvc.CreateOrder(ctx, &models.CreateOrderRequest{
		CustomerID: debtor.ID,
		Items:      []models.LineItemRequest{{Name: "Rice 50kg", Quantity: 1, UnitPrice: 20000}},
	})
	require.NoError(t, err)
	_, err = f.paymentSvc.RecordPayment(ctx, debtor.ID, &models.CreatePaymentRequest{Amount: 8000})
	require.NoError(t, err)

	_, err = f.orderSvc.CreateOrder(ctx, &models.CreateOrderRequest{
		CustomerID: settled.ID,
		Items:      []models.LineItemRequest{{Name: "Beans 25kg", Quantity: 1, UnitPrice: 5000}},
	})
	require.NoError(t, err)
	_, err = f.paymentSvc.RecordPayment(ctx, settled.ID, &models.CreatePaymentRequest{Amount: 5000})
	require.NoError(t, err)

	stats, err := newAnalyticsFixture(f).Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.CustomerCount)
	assert.Equal(t, 1, stats.DebtorCount)
	assert.Equal(t, 12000.0, stats.TotalDebt)
	assert.Equal(t, 2, stats.OrderCount)
	assert.Equal(t, 25000.0, stats.TotalOrderValue)
	assert.Equal(t, 1, stats.PaidOrders)
	assert.Equal(t, 1, stats.PartialOrders)
	assert.Zero(t, stats.UnpaidOrders)

	require.Len(t, stats.TopDebtors, 1)
	assert.Equal(t, debtor.ID, stats.TopDebtors[0].CustomerID)
	assert.Equal(t, 12000.0, stats.TopDebtors[0].TotalDebt)

	require.Len(t, stats.MonthlySeries, 12)
	current := stats.MonthlySeries[11]
	assert.Equal(t, time.Now().Format("Jan 2006"), current.Month)
	assert.Equal(t, 25000.0, current.DebtIssued)
	assert.Equal(t, 13000.0, current.Collected)
	for _, m := range stats.MonthlySeries[:11] {
		assert.Zero(t, m.DebtIssued)
		assert.Zero(t, m.Collected)
	}
}

func TestDashboard_UnpaidWithoutPayments(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	customer := seedCustomer(t, f, 0)

	for i := 0; i < 2; i++ {
		_, err := f.orderSvc.CreateOrder(ctx, &models.CreateOrderRequest{
			CustomerID: customer.ID,
			Items:      []models.LineItemRequest{{Name: "Palm Oil 25L", Quantity: 1, UnitPrice: 30000}},
		})
		require.NoError(t, err)
	}

	stats, err := newAnalyticsFixture(f).Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.UnpaidOrders)
	assert.Zero(t, stats.PaidOrders)
	assert.Zero(t, stats.PartialOrders)
}

func TestDashboard_TopDebtorsSortedAndCapped(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		customer, err := f.customerSvc.CreateCustomer(ctx, &models.CreateCustomerRequest{
			Name:       fmt.Sprintf("Customer %02d", i),
			Phone:      fmt.Sprintf("0803000%04d", i),
			OldBalance: float64(i * 1000),
		})
		require.NoError(t, err)
		require.NotNil(t, customer)
	}

	stats, err := newAnalyticsFixture(f).Dashboard(ctx)
	require.NoError(t, err)

	require.Len(t, stats.TopDebtors, 10)
	assert.Equal(t, 12000.0, stats.TopDebtors[0].TotalDebt)
	assert.Equal(t, "Customer 12", stats.TopDebtors[0].Name)
	assert.Equal(t, 3000.0, stats.TopDebtors[9].TotalDebt)
}
