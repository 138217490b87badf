package services

import (
	"context"
	"errors"

	"bge-backend/internal/ledger"
	"bge-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

// The store interfaces cover exactly what the workflows call on the pgx
// repositories. Tests substitute in-memory fakes.

type CustomerStore interface {
	Create(ctx context.Context, c *models.Customer) error
	Get(ctx context.Context, id int) (*models.Customer, error)
	List(ctx context.Context) ([]*models.Customer, error)
	Update(ctx context.Context, c *models.Customer) error
	UpdateBalance(ctx context.Context, id int, totalDebt, wallet float64) error
	Delete(ctx context.Context, id int) error
}

type OrderStore interface {
	Create(ctx context.Context, o *models.Order) error
	Get(ctx context.Context, id int) (*models.Order, error)
	List(ctx context.Context) ([]*models.OrderWithCustomer, error)
	ListByCustomer(ctx context.Context, customerID int) ([]*models.Order, error)
	ReplaceItems(ctx context.Context, o *models.Order) error
	SetWalletUsed(ctx context.Context, id int, amount float64) error
	Delete(ctx context.Context, id int) error
	MaxNumber(ctx context.Context) (int, error)
	NumberExists(ctx context.Context, number string) (bool, error)
}

type ReturnStore interface {
	Create(ctx context.Context, ret *models.Return) error
	Get(ctx context.Context, id int) (*models.Return, error)
	ListByCustomer(ctx context.Context, customerID int) ([]*models.Return, error)
	ReplaceItems(ctx context.Context, ret *models.Return) error
	Delete(ctx context.Context, id int) error
	MaxNumber(ctx context.Context) (int, error)
	NumberExists(ctx context.Context, number string) (bool, error)
}

type PaymentStore interface {
	Create(ctx context.Context, p *models.Payment) error
	Get(ctx context.Context, id int) (*models.Payment, error)
	ListByCustomer(ctx context.Context, customerID int) ([]*models.Payment, error)
	Update(ctx context.Context, p *models.Payment) error
	Delete(ctx context.Context, id int) error
	DeleteByCustomer(ctx context.Context, customerID int) error
}

type ProductStore interface {
	Create(ctx context.Context, p *models.Product) error
	Get(ctx context.Context, id int) (*models.Product, error)
	GetByName(ctx context.Context, name string) (*models.Product, error)
	List(ctx context.Context, search string, activeOnly bool) ([]*models.Product, error)
	ListLowStock(ctx context.Context) ([]*models.Product, error)
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id int) error
	UsedInOrders(ctx context.Context, id int) (bool, error)
	ApplyEvent(ctx context.Context, ev *models.StockEvent) error
	History(ctx context.Context, productID int) ([]*models.StockEvent, error)
	EventsByOrder(ctx context.Context, orderID int) ([]*models.StockEvent, error)
	EventsByReturn(ctx context.Context, returnID int) ([]*models.StockEvent, error)
}

type ExpenseStore interface {
	Create(ctx context.Context, e *models.Expense) error
	Get(ctx context.Context, id int) (*models.Expense, error)
	List(ctx context.Context, f models.ExpenseFilter) ([]*models.Expense, error)
	Summary(ctx context.Context, f models.ExpenseFilter) (*models.ExpenseSummary, error)
	Update(ctx context.Context, e *models.Expense) error
	Delete(ctx context.Context, id int) error
}

// notFound maps a missing-row error from the store onto the domain error
func notFound(entity string, id int, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return &ledger.NotFoundError{Entity: entity, ID: id}
	}
	return err
}
