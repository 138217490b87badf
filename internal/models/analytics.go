package models

// DebtorStat is one row of the top-debtors board
type DebtorStat struct {
	CustomerID int     `json:"customer_id"`
	Name       string  `json:"name"`
	TotalDebt  float64 `json:"total_debt"`
}

// MonthlyFlow is one month of the dashboard chart: credit issued through
// orders against payments collected.
type MonthlyFlow struct {
	Month      string  `json:"month"`
	DebtIssued float64 `json:"debt_issued"`
	Collected  float64 `json:"collected"`
}

// DashboardStats is the rollup shown on the dashboard landing page
type DashboardStats struct {
	CustomerCount   int     `json:"customer_count"`
	DebtorCount     int     `json:"debtor_count"`
	TotalDebt       float64 `json:"total_debt"`
	TotalWallet     float64 `json:"total_wallet"`
	OrderCount      int     `json:"order_count"`
	TotalOrderValue float64 `json:"total_order_value"`
	PaidOrders      int     `json:"paid_orders"`
	PartialOrders   int     `json:"partial_orders"`
	UnpaidOrders    int     `json:"unpaid_orders"`
	LowStockCount   int     `json:"low_stock_count"`
	ExpenseTotal    float64 `json:"expense_total"`

	TopDebtors    []DebtorStat  `json:"top_debtors"`
	MonthlySeries []MonthlyFlow `json:"monthly_series"`
}
