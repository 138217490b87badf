package repositories

import (
	"context"

	"bge-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExpenseRepository struct {
	DB *pgxpool.Pool
}

func NewExpenseRepository(db *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{DB: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *models.Expense) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO expenses(date, amount, category, description, payment_method, receipt_number,
                vendor_name, vendor_contact, vat_amount, is_tax_deductible)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
         RETURNING id, created_at, updated_at`,
		e.Date, e.Amount, e.Category, e.Description, e.PaymentMethod, e.ReceiptNumber,
		e.VendorName, e.VendorContact, e.VATAmount, e.IsTaxDeductible,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

const expenseSelect = `SELECT id, date, amount, category, COALESCE(description, '') as description,
       COALESCE(payment_method, '') as payment_method, COALESCE(receipt_number, '') as receipt_number,
       COALESCE(vendor_name, '') as vendor_name, COALESCE(vendor_contact, '') as vendor_contact,
       vat_amount, is_tax_deductible, created_at, updated_at
  FROM expenses`

func scanExpense(row rowScanner) (*models.Expense, error) {
	var e models.Expense
	err := row.Scan(&e.ID, &e.Date, &e.Amount, &e.Category, &e.Description,
		&e.PaymentMethod, &e.ReceiptNumber, &e.VendorName, &e.VendorContact,
		&e.VATAmount, &e.IsTaxDeductible, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepository) Get(ctx context.Context, id int) (*models.Expense, error) {
	row := r.DB.QueryRow(ctx, expenseSelect+` WHERE id=$1`, id)
	return scanExpense(row)
}

// List applies the filter's optional date range, category and search term
func (r *ExpenseRepository) List(ctx context.Context, f models.ExpenseFilter) ([]*models.Expense, error) {
	rows, err := r.DB.Query(ctx,
		expenseSelect+`
         WHERE ($1::timestamptz IS NULL OR date >= $1)
           AND ($2::timestamptz IS NULL OR date <= $2)
           AND ($3 = '' OR category = $3)
           AND ($4 = '' OR description ILIKE '%' || $4 || '%' OR vendor_name ILIKE '%' || $4 || '%')
         ORDER BY date DESC`,
		f.StartDate, f.EndDate, f.Category, f.Search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (r *ExpenseRepository) Summary(ctx context.Context, f models.ExpenseFilter) (*models.ExpenseSummary, error) {
	var s models.ExpenseSummary
	err := r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0), COALESCE(SUM(vat_amount), 0), COUNT(*)
         FROM expenses
         WHERE ($1::timestamptz IS NULL OR date >= $1)
           AND ($2::timestamptz IS NULL OR date <= $2)
           AND ($3 = '' OR category = $3)
           AND ($4 = '' OR description ILIKE '%' || $4 || '%' OR vendor_name ILIKE '%' || $4 || '%')`,
		f.StartDate, f.EndDate, f.Category, f.Search,
	).Scan(&s.TotalAmount, &s.TotalVAT, &s.Count)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, e *models.Expense) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE expenses SET date=$1, amount=$2, category=$3, description=$4, payment_method=$5,
                receipt_number=$6, vendor_name=$7, vendor_contact=$8, vat_amount=$9,
                is_tax_deductible=$10, updated_at=CURRENT_TIMESTAMP
         WHERE id=$11`,
		e.Date, e.Amount, e.Category, e.Description, e.PaymentMethod,
		e.ReceiptNumber, e.VendorName, e.VendorContact, e.VATAmount,
		e.IsTaxDeductible, e.ID)
	return err
}

func (r *ExpenseRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM expenses WHERE id=$1`, id)
	return err
}
