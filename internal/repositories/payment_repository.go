package repositories

import (
	"context"

	"bge-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO payments(customer_id, amount, note, paid_at)
         VALUES($1, $2, $3, $4)
         RETURNING id, created_at`,
		p.CustomerID, p.Amount, p.Note, p.PaidAt,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *PaymentRepository) Get(ctx context.Context, id int) (*models.Payment, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, customer_id, amount, COALESCE(note, '') as note, paid_at, created_at
         FROM payments WHERE id=$1`, id)

	var p models.Payment
	err := row.Scan(&p.ID, &p.CustomerID, &p.Amount, &p.Note, &p.PaidAt, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) ListByCustomer(ctx context.Context, customerID int) ([]*models.Payment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, customer_id, amount, COALESCE(note, '') as note, paid_at, created_at
         FROM payments WHERE customer_id=$1 ORDER BY paid_at ASC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.CustomerID, &p.Amount, &p.Note, &p.PaidAt, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, &p)
	}
	return payments, rows.Err()
}

func (r *PaymentRepository) Update(ctx context.Context, p *models.Payment) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE payments SET amount=$1, note=$2 WHERE id=$3`,
		p.Amount, p.Note, p.ID)
	return err
}

func (r *PaymentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM payments WHERE id=$1`, id)
	return err
}

func (r *PaymentRepository) DeleteByCustomer(ctx context.Context, customerID int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM payments WHERE customer_id=$1`, customerID)
	return err
}
