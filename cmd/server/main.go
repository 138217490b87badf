package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"bge-backend/internal/config"
	"bge-backend/internal/database"
	"bge-backend/internal/db"
	"bge-backend/internal/handlers"
	"bge-backend/internal/health"
	h "bge-backend/internal/http"
	"bge-backend/internal/middleware"
	"bge-backend/internal/repositories"
	"bge-backend/internal/services"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.NewMigrator(pool).RunMigrations(ctx); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	// Repositories
	customerRepo := repositories.NewCustomerRepository(pool)
	orderRepo := repositories.NewOrderRepository(pool)
	returnRepo := repositories.NewReturnRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)
	productRepo := repositories.NewProductRepository(pool)
	expenseRepo := repositories.NewExpenseRepository(pool)

	// Services
	customerService := services.NewCustomerService(customerRepo, orderRepo, returnRepo, paymentRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, customerRepo, returnRepo, paymentRepo, productRepo)
	returnService := services.NewReturnService(returnRepo, orderRepo, customerRepo, paymentRepo, productRepo)
	paymentService := services.NewPaymentService(paymentRepo, customerRepo, orderRepo, returnRepo)
	productService := services.NewProductService(productRepo)
	expenseService := services.NewExpenseService(expenseRepo)
	statementService := services.NewStatementService(customerRepo, orderRepo, returnRepo, paymentRepo, expenseRepo,
		services.Letterhead{
			Name:    cfg.Company.Name,
			Address: cfg.Company.Address,
			Phone:   cfg.Company.Phone,
			Email:   cfg.Company.Email,
		})
	analyticsService := services.NewAnalyticsService(customerRepo, orderRepo, paymentRepo, productRepo, expenseRepo)

	// Handlers
	customerHandler := handlers.NewCustomerHandler(customerService)
	orderHandler := handlers.NewOrderHandler(orderService)
	returnHandler := handlers.NewReturnHandler(returnService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	productHandler := handlers.NewProductHandler(productService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	statementHandler := handlers.NewStatementHandler(statementService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	router := h.NewRouter(
		customerHandler,
		orderHandler,
		returnHandler,
		paymentHandler,
		productHandler,
		expenseHandler,
		statementHandler,
		analyticsHandler,
		healthHandler,
	)

	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[Server] listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
