package repositories

import (
	"context"

	"bge-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *models.Customer) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO customers(name, phone, email, address, old_balance, total_debt, wallet)
         VALUES($1, $2, $3, $4, $5, $6, $7)
         RETURNING id, created_at, updated_at`,
		c.Name, c.Phone, c.Email, c.Address, c.OldBalance, c.TotalDebt, c.Wallet,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CustomerRepository) Get(ctx context.Context, id int) (*models.Customer, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, phone, COALESCE(email, '') as email, COALESCE(address, '') as address,
                old_balance, total_debt, wallet, created_at, updated_at
         FROM customers WHERE id=$1`, id)

	var c models.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address,
		&c.OldBalance, &c.TotalDebt, &c.Wallet, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, phone, COALESCE(email, '') as email, COALESCE(address, '') as address,
                old_balance, total_debt, wallet, created_at, updated_at
         FROM customers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		var c models.Customer
		err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address,
			&c.OldBalance, &c.TotalDebt, &c.Wallet, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) Update(ctx context.Context, c *models.Customer) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE customers SET name=$1, phone=$2, email=$3, address=$4, old_balance=$5,
                updated_at=CURRENT_TIMESTAMP
         WHERE id=$6`,
		c.Name, c.Phone, c.Email, c.Address, c.OldBalance, c.ID)
	return err
}

// UpdateBalance writes the reconciled derived fields. Only the
// reconciliation workflow calls this; the values are never authored by hand.
func (r *CustomerRepository) UpdateBalance(ctx context.Context, id int, totalDebt, wallet float64) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE customers SET total_debt=$1, wallet=$2, updated_at=CURRENT_TIMESTAMP WHERE id=$3`,
		totalDebt, wallet, id)
	return err
}

func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	return err
}
