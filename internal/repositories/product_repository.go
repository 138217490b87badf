package repositories

import (
	"context"

	"bge-backend/internal/metrics"
	"bge-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	DB *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO products(name, unit, current_stock, unit_price, low_stock_threshold,
                description, category, is_active)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING id, created_at, updated_at`,
		p.Name, p.Unit, p.CurrentStock, p.UnitPrice, p.LowStockThreshold,
		p.Description, p.Category, p.IsActive,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepository) Get(ctx context.Context, id int) (*models.Product, error) {
	row := r.DB.QueryRow(ctx, productSelect+` WHERE id=$1`, id)
	return scanProduct(row)
}

// GetByName resolves a product by name, case-insensitively
func (r *ProductRepository) GetByName(ctx context.Context, name string) (*models.Product, error) {
	row := r.DB.QueryRow(ctx, productSelect+` WHERE LOWER(name)=LOWER($1)`, name)
	return scanProduct(row)
}

const productSelect = `SELECT id, name, unit, current_stock, unit_price, low_stock_threshold,
       COALESCE(description, '') as description, COALESCE(category, '') as category,
       is_active, created_at, updated_at
  FROM products`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Unit, &p.CurrentStock, &p.UnitPrice, &p.LowStockThreshold,
		&p.Description, &p.Category, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns products, optionally filtered by a name/category search term
// and active status.
func (r *ProductRepository) List(ctx context.Context, search string, activeOnly bool) ([]*models.Product, error) {
	query := productSelect + ` WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR category ILIKE '%' || $1 || '%')`
	if activeOnly {
		query += ` AND is_active`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.DB.Query(ctx, query, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// ListLowStock returns active products at or below their low-stock threshold
func (r *ProductRepository) ListLowStock(ctx context.Context) ([]*models.Product, error) {
	rows, err := r.DB.Query(ctx,
		productSelect+` WHERE is_active AND current_stock <= low_stock_threshold ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE products SET name=$1, unit=$2, unit_price=$3, low_stock_threshold=$4,
                description=$5, category=$6, is_active=$7, updated_at=CURRENT_TIMESTAMP
         WHERE id=$8`,
		p.Name, p.Unit, p.UnitPrice, p.LowStockThreshold,
		p.Description, p.Category, p.IsActive, p.ID)
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	return err
}

// UsedInOrders reports whether any order line item references the product
func (r *ProductRepository) UsedInOrders(ctx context.Context, id int) (bool, error) {
	var used bool
	err := r.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM order_items WHERE product_id=$1)`, id).Scan(&used)
	return used, err
}

// ApplyEvent appends a stock event and moves current_stock to the event's
// new level in one transaction, so the cached projection can never drift
// from the history.
func (r *ProductRepository) ApplyEvent(ctx context.Context, ev *models.StockEvent) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO stock_events(product_id, event_type, quantity, previous_stock, new_stock,
                reason, order_id, return_id)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING id, created_at`,
		ev.ProductID, ev.Type, ev.Quantity, ev.PreviousStock, ev.NewStock,
		ev.Reason, ev.OrderID, ev.ReturnID,
	).Scan(&ev.ID, &ev.CreatedAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE products SET current_stock=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		ev.NewStock, ev.ProductID)
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	metrics.StockEventsTotal.WithLabelValues(string(ev.Type)).Inc()
	return nil
}

// History returns a product's stock events, oldest first
func (r *ProductRepository) History(ctx context.Context, productID int) ([]*models.StockEvent, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, product_id, event_type, quantity, previous_stock, new_stock,
                COALESCE(reason, '') as reason, order_id, return_id, created_at
         FROM stock_events WHERE product_id=$1 ORDER BY id ASC`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStockEvents(rows)
}

// EventsByOrder returns the stock events an order caused, for reversal
func (r *ProductRepository) EventsByOrder(ctx context.Context, orderID int) ([]*models.StockEvent, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, product_id, event_type, quantity, previous_stock, new_stock,
                COALESCE(reason, '') as reason, order_id, return_id, created_at
         FROM stock_events WHERE order_id=$1 ORDER BY id ASC`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStockEvents(rows)
}

// EventsByReturn returns the stock events a return caused, for reversal
func (r *ProductRepository) EventsByReturn(ctx context.Context, returnID int) ([]*models.StockEvent, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, product_id, event_type, quantity, previous_stock, new_stock,
                COALESCE(reason, '') as reason, order_id, return_id, created_at
         FROM stock_events WHERE return_id=$1 ORDER BY id ASC`, returnID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStockEvents(rows)
}

func scanStockEvents(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]*models.StockEvent, error) {
	var events []*models.StockEvent
	for rows.Next() {
		var ev models.StockEvent
		err := rows.Scan(&ev.ID, &ev.ProductID, &ev.Type, &ev.Quantity, &ev.PreviousStock,
			&ev.NewStock, &ev.Reason, &ev.OrderID, &ev.ReturnID, &ev.CreatedAt)
		if err != nil {
			return nil, err
		}
		events = append(events, &ev)
	}
	return events, rows.Err()
}
