package services

import (
	"context"
	"sort"
	"time"

	"bge-backend/internal/models"
)

const (
	topDebtorLimit = 10
	seriesMonths   = 12
)

// AnalyticsService computes dashboard rollups over the stored records
type AnalyticsService struct {
	Customers CustomerStore
	Orders    OrderStore
	Payments  PaymentStore
	Products  ProductStore
	Expenses  ExpenseStore
}

func NewAnalyticsService(customers CustomerStore, orders OrderStore, payments PaymentStore, products ProductStore, expenses ExpenseStore) *AnalyticsService {
	return &AnalyticsService{
		Customers: customers,
		Orders:    orders,
		Payments:  payments,
		Products:  products,
		Expenses:  expenses,
	}
}

// Dashboard walks every customer's orders and payments once, building the
// flat totals, the top-debtors board, the paid/partial/unpaid order split
// and the last-12-months chart series.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	customers, err := s.Customers.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.CustomerCount = len(customers)

	series := recentMonths(time.Now(), seriesMonths)
	buckets := make(map[string]*models.MonthlyFlow, len(series))
	for i := range series {
		buckets[series[i].Month] = &series[i]
	}

	for _, c := range customers {
		stats.TotalDebt += c.TotalDebt
		stats.TotalWallet += c.Wallet
		if c.TotalDebt > 0 {
			stats.DebtorCount++
			stats.TopDebtors = append(stats.TopDebtors, models.DebtorStat{
				CustomerID: c.ID,
				Name:       c.Name,
				TotalDebt:  c.TotalDebt,
			})
		}

		orders, err := s.Orders.ListByCustomer(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		payments, err := s.Payments.ListByCustomer(ctx, c.ID)
		if err != nil {
			return nil, err
		}

		var orderTotal, paidTotal float64
		stats.OrderCount += len(orders)
		for _, o := range orders {
			orderTotal += o.TotalAmount
			if b, ok := buckets[monthKey(o.CreatedAt)]; ok {
				b.DebtIssued += o.TotalAmount
			}
		}
		for _, p := range payments {
			paidTotal += p.Amount
			if b, ok := buckets[monthKey(p.PaidAt)]; ok {
				b.Collected += p.Amount
			}
		}
		stats.TotalOrderValue += orderTotal

		// A customer's orders are classified together by how far their
		// payments cover the order total.
		switch {
		case len(orders) == 0:
		case paidTotal == 0:
			stats.UnpaidOrders += len(orders)
		case paidTotal >= orderTotal:
			stats.PaidOrders += len(orders)
		default:
			stats.PartialOrders += len(orders)
		}
	}

	sort.Slice(stats.TopDebtors, func(i, j int) bool {
		return stats.TopDebtors[i].TotalDebt > stats.TopDebtors[j].TotalDebt
	})
	if len(stats.TopDebtors) > topDebtorLimit {
		stats.TopDebtors = stats.TopDebtors[:topDebtorLimit]
	}
	stats.MonthlySeries = series

	lowStock, err := s.Products.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	stats.LowStockCount = len(lowStock)

	summary, err := s.Expenses.Summary(ctx, models.ExpenseFilter{})
	if err != nil {
		return nil, err
	}
	stats.ExpenseTotal = summary.TotalAmount

	return stats, nil
}

func monthKey(t time.Time) string {
	return t.Format("Jan 2006")
}

// recentMonths returns empty chart buckets for the last n calendar months,
// oldest first and ending with the current month.
func recentMonths(now time.Time, n int) []models.MonthlyFlow {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	series := make([]models.MonthlyFlow, 0, n)
	for i := n - 1; i >= 0; i-- {
		series = append(series, models.MonthlyFlow{Month: monthKey(first.AddDate(0, -i, 0))})
	}
	return series
}
