package repositories

import (
	"context"

	"bge-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReturnRepository struct {
	DB *pgxpool.Pool
}

func NewReturnRepository(db *pgxpool.Pool) *ReturnRepository {
	return &ReturnRepository{DB: db}
}

func (r *ReturnRepository) Create(ctx context.Context, ret *models.Return) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO returns(customer_id, order_id, return_number, total_amount, reason)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		ret.CustomerID, ret.OrderID, ret.ReturnNumber, ret.TotalAmount, ret.Reason,
	).Scan(&ret.ID, &ret.CreatedAt, &ret.UpdatedAt)
	if err != nil {
		return err
	}

	if err := insertReturnItems(ctx, tx, ret.ID, ret.Items); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func insertReturnItems(ctx context.Context, tx pgx.Tx, returnID int, items []models.LineItem) error {
	for i := range items {
		err := tx.QueryRow(ctx,
			`INSERT INTO return_items(return_id, name, quantity, unit_price, total_price, product_id)
             VALUES($1, $2, $3, $4, $5, $6)
             RETURNING id`,
			returnID, items[i].Name, items[i].Quantity, items[i].UnitPrice,
			items[i].TotalPrice, items[i].ProductID,
		).Scan(&items[i].ID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *ReturnRepository) Get(ctx context.Context, id int) (*models.Return, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, customer_id, order_id, return_number, total_amount, COALESCE(reason, '') as reason,
                created_at, updated_at
         FROM returns WHERE id=$1`, id)

	var ret models.Return
	err := row.Scan(&ret.ID, &ret.CustomerID, &ret.OrderID, &ret.ReturnNumber,
		&ret.TotalAmount, &ret.Reason, &ret.CreatedAt, &ret.UpdatedAt)
	if err != nil {
		return nil, err
	}

	items, err := r.itemsFor(ctx, ret.ID)
	if err != nil {
		return nil, err
	}
	ret.Items = items
	return &ret, nil
}

func (r *ReturnRepository) itemsFor(ctx context.Context, returnID int) ([]models.LineItem, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, quantity, unit_price, total_price, product_id
         FROM return_items WHERE return_id=$1 ORDER BY id`, returnID)
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

func (r *ReturnRepository) ListByCustomer(ctx context.Context, customerID int) ([]*models.Return, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, customer_id, order_id, return_number, total_amount, COALESCE(reason, '') as reason,
                created_at, updated_at
         FROM returns WHERE customer_id=$1 ORDER BY created_at ASC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var returns []*models.Return
	for rows.Next() {
		var ret models.Return
		err := rows.Scan(&ret.ID, &ret.CustomerID, &ret.OrderID, &ret.ReturnNumber,
			&ret.TotalAmount, &ret.Reason, &ret.CreatedAt, &ret.UpdatedAt)
		if err != nil {
			return nil, err
		}
		returns = append(returns, &ret)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, ret := range returns {
		items, err := r.itemsFor(ctx, ret.ID)
		if err != nil {
			return nil, err
		}
		ret.Items = items
	}
	return returns, nil
}

func (r *ReturnRepository) ReplaceItems(ctx context.Context, ret *models.Return) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM return_items WHERE return_id=$1`, ret.ID); err != nil {
		return err
	}
	if err := insertReturnItems(ctx, tx, ret.ID, ret.Items); err != nil {
		return err
	}
	_, err = tx.Exec(ctx,
		`UPDATE returns SET total_amount=$1, reason=$2, updated_at=CURRENT_TIMESTAMP WHERE id=$3`,
		ret.TotalAmount, ret.Reason, ret.ID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *ReturnRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM returns WHERE id=$1`, id)
	return err
}

func (r *ReturnRepository) MaxNumber(ctx context.Context) (int, error) {
	var latest *string
	err := r.DB.QueryRow(ctx,
		`SELECT return_number FROM returns ORDER BY id DESC LIMIT 1`).Scan(&latest)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return parseDocNumber(*latest), nil
}

func (r *ReturnRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM returns WHERE return_number=$1)`, number).Scan(&exists)
	return exists, err
}
