package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bge-backend/internal/handlers"
)

func NewRouter(
	customerHandler *handlers.CustomerHandler,
	orderHandler *handlers.OrderHandler,
	returnHandler *handlers.ReturnHandler,
	paymentHandler *handlers.PaymentHandler,
	productHandler *handlers.ProductHandler,
	expenseHandler *handlers.ExpenseHandler,
	statementHandler *handlers.StatementHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	healthHandler *handlers.HealthHandler,
) *mux.Router {
	r := mux.NewRouter()

	// Customers
	customersAPI := r.PathPrefix("/api/customers").Subrouter()
	customersAPI.HandleFunc("", customerHandler.ListCustomers).Methods("GET")
	customersAPI.HandleFunc("", customerHandler.CreateCustomer).Methods("POST")
	customersAPI.HandleFunc("/{id}", customerHandler.GetCustomer).Methods("GET")
	customersAPI.HandleFunc("/{id}", customerHandler.UpdateCustomer).Methods("PUT")
	customersAPI.HandleFunc("/{id}", customerHandler.DeleteCustomer).Methods("DELETE")
	customersAPI.HandleFunc("/{id}/history", customerHandler.GetHistory).Methods("GET")
	customersAPI.HandleFunc("/{id}/statement", statementHandler.CustomerStatement).Methods("GET")

	// Documents scoped under a customer
	customersAPI.HandleFunc("/{id}/orders", orderHandler.ListByCustomer).Methods("GET")
	customersAPI.HandleFunc("/{id}/payments", paymentHandler.ListByCustomer).Methods("GET")
	customersAPI.HandleFunc("/{id}/payments", paymentHandler.RecordPayment).Methods("POST")
	customersAPI.HandleFunc("/{id}/returns", returnHandler.ListByCustomer).Methods("GET")
	customersAPI.HandleFunc("/{id}/returns", returnHandler.CreateReturn).Methods("POST")

	// Orders
	ordersAPI := r.PathPrefix("/api/orders").Subrouter()
	ordersAPI.HandleFunc("", orderHandler.ListOrders).Methods("GET")
	ordersAPI.HandleFunc("", orderHandler.CreateOrder).Methods("POST")
	ordersAPI.HandleFunc("/{id}", orderHandler.GetOrder).Methods("GET")
	ordersAPI.HandleFunc("/{id}", orderHandler.UpdateOrder).Methods("PUT")
	ordersAPI.HandleFunc("/{id}", orderHandler.DeleteOrder).Methods("DELETE")

	// Returns
	returnsAPI := r.PathPrefix("/api/returns").Subrouter()
	returnsAPI.HandleFunc("/{id}", returnHandler.GetReturn).Methods("GET")
	returnsAPI.HandleFunc("/{id}", returnHandler.UpdateReturn).Methods("PUT")
	returnsAPI.HandleFunc("/{id}", returnHandler.DeleteReturn).Methods("DELETE")

	// Payments
	paymentsAPI := r.PathPrefix("/api/payments").Subrouter()
	paymentsAPI.HandleFunc("/{id}", paymentHandler.UpdatePayment).Methods("PUT")
	paymentsAPI.HandleFunc("/{id}", paymentHandler.DeletePayment).Methods("DELETE")

	// Products and stock
	productsAPI := r.PathPrefix("/api/products").Subrouter()
	productsAPI.HandleFunc("", productHandler.ListProducts).Methods("GET")
	productsAPI.HandleFunc("", productHandler.CreateProduct).Methods("POST")
	productsAPI.HandleFunc("/low-stock", productHandler.ListLowStock).Methods("GET")
	productsAPI.HandleFunc("/{id}", productHandler.GetProduct).Methods("GET")
	productsAPI.HandleFunc("/{id}", productHandler.UpdateProduct).Methods("PUT")
	productsAPI.HandleFunc("/{id}", productHandler.DeleteProduct).Methods("DELETE")
	productsAPI.HandleFunc("/{id}/stock", productHandler.MutateStock).Methods("POST")
	productsAPI.HandleFunc("/{id}/history", productHandler.GetHistory).Methods("GET")

	// Expenses
	expensesAPI := r.PathPrefix("/api/expenses").Subrouter()
	expensesAPI.HandleFunc("", expenseHandler.ListExpenses).Methods("GET")
	expensesAPI.HandleFunc("", expenseHandler.RecordExpense).Methods("POST")
	expensesAPI.HandleFunc("/report", statementHandler.ExpenseReport).Methods("GET")
	expensesAPI.HandleFunc("/{id}", expenseHandler.GetExpense).Methods("GET")
	expensesAPI.HandleFunc("/{id}", expenseHandler.UpdateExpense).Methods("PUT")
	expensesAPI.HandleFunc("/{id}", expenseHandler.DeleteExpense).Methods("DELETE")

	// Analytics
	r.HandleFunc("/api/analytics/dashboard", analyticsHandler.Dashboard).Methods("GET")

	// Health and metrics
	r.HandleFunc("/health", healthHandler.Liveness).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.Readiness).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.Detailed).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
