package repositories

import (
	"context"
	"strconv"
	"strings"

	"bge-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create inserts the order and its line items in one transaction
func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO orders(customer_id, order_number, total_amount, wallet_used)
         VALUES($1, $2, $3, $4)
         RETURNING id, created_at, updated_at`,
		o.CustomerID, o.OrderNumber, o.TotalAmount, o.WalletUsed,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return err
	}

	if err := insertOrderItems(ctx, tx, o.ID, o.Items); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func insertOrderItems(ctx context.Context, tx pgx.Tx, orderID int, items []models.LineItem) error {
	for i := range items {
		err := tx.QueryRow(ctx,
			`INSERT INTO order_items(order_id, name, quantity, unit_price, total_price, product_id)
             VALUES($1, $2, $3, $4, $5, $6)
             RETURNING id`,
			orderID, items[i].Name, items[i].Quantity, items[i].UnitPrice,
			items[i].TotalPrice, items[i].ProductID,
		).Scan(&items[i].ID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepository) Get(ctx context.Context, id int) (*models.Order, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, customer_id, order_number, total_amount, wallet_used, created_at, updated_at
         FROM orders WHERE id=$1`, id)

	var o models.Order
	err := row.Scan(&o.ID, &o.CustomerID, &o.OrderNumber, &o.TotalAmount,
		&o.WalletUsed, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}

	items, err := r.itemsFor(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *OrderRepository) itemsFor(ctx context.Context, orderID int) ([]models.LineItem, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, quantity, unit_price, total_price, product_id
         FROM order_items WHERE order_id=$1 ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.LineItem
	for rows.Next() {
		var it models.LineItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Quantity, &it.UnitPrice, &it.TotalPrice, &it.ProductID); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *OrderRepository) List(ctx context.Context) ([]*models.OrderWithCustomer, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT o.id, o.customer_id, o.order_number, o.total_amount, o.wallet_used,
                o.created_at, o.updated_at, c.name, c.phone
         FROM orders o
         JOIN customers c ON o.customer_id = c.id
         ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.OrderWithCustomer
	for rows.Next() {
		var o models.OrderWithCustomer
		err := rows.Scan(&o.ID, &o.CustomerID, &o.OrderNumber, &o.TotalAmount, &o.WalletUsed,
			&o.CreatedAt, &o.UpdatedAt, &o.CustomerName, &o.CustomerPhone)
		if err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, o := range orders {
		items, err := r.itemsFor(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return orders, nil
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID int) ([]*models.Order, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, customer_id, order_number, total_amount, wallet_used, created_at, updated_at
         FROM orders WHERE customer_id=$1 ORDER BY created_at ASC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		var o models.Order
		err := rows.Scan(&o.ID, &o.CustomerID, &o.OrderNumber, &o.TotalAmount,
			&o.WalletUsed, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, o := range orders {
		items, err := r.itemsFor(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return orders, nil
}

// ReplaceItems swaps the order's line items wholesale and updates the
// derived total, in one transaction.
func (r *OrderRepository) ReplaceItems(ctx context.Context, o *models.Order) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id=$1`, o.ID); err != nil {
		return err
	}
	if err := insertOrderItems(ctx, tx, o.ID, o.Items); err != nil {
		return err
	}
	_, err = tx.Exec(ctx,
		`UPDATE orders SET total_amount=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		o.TotalAmount, o.ID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// SetWalletUsed records how much pre-existing wallet credit an edit absorbed
func (r *OrderRepository) SetWalletUsed(ctx context.Context, id int, amount float64) error {
	_, err := r.DB.Exec(ctx, `UPDATE orders SET wallet_used=$1 WHERE id=$2`, amount, id)
	return err
}

func (r *OrderRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	return err
}

// MaxNumber returns the highest sequential part of any order number, 0 when
// there are no orders yet.
func (r *OrderRepository) MaxNumber(ctx context.Context) (int, error) {
	var latest *string
	err := r.DB.QueryRow(ctx,
		`SELECT order_number FROM orders ORDER BY id DESC LIMIT 1`).Scan(&latest)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return parseDocNumber(*latest), nil
}

func (r *OrderRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM orders WHERE order_number=$1)`, number).Scan(&exists)
	return exists, err
}

// parseDocNumber extracts the sequence from numbers like "ORD-00042"
func parseDocNumber(number string) int {
	_, seq, found := strings.Cut(number, "-")
	if !found {
		return 0
	}
	n, err := strconv.Atoi(seq)
	if err != nil {
		return 0
	}
	return n
}
