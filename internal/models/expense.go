package models

import "time"

// Expense categories and payment methods match the bookkeeping sheets the
// shop already uses.
const (
	ExpenseCategoryOperating       = "operating"
	ExpenseCategoryInventory       = "inventory"
	ExpenseCategoryTax             = "tax"
	ExpenseCategoryLabourTransport = "labour_transport"
	ExpenseCategoryOther           = "other"
)

type Expense struct {
	ID              int       `json:"id"`
	Date            time.Time `json:"date"`
	Amount          float64   `json:"amount"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	PaymentMethod   string    `json:"payment_method"`
	ReceiptNumber   string    `json:"receipt_number"`
	VendorName      string    `json:"vendor_name"`
	VendorContact   string    `json:"vendor_contact"`
	VATAmount       float64   `json:"vat_amount"`
	IsTaxDeductible bool      `json:"is_tax_deductible"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateExpenseRequest represents the request body for recording an expense
type CreateExpenseRequest struct {
	Date            time.Time `json:"date"`
	Amount          float64   `json:"amount"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	PaymentMethod   string    `json:"payment_method"`
	ReceiptNumber   string    `json:"receipt_number"`
	VendorName      string    `json:"vendor_name"`
	VendorContact   string    `json:"vendor_contact"`
	VATAmount       float64   `json:"vat_amount"`
	IsTaxDeductible bool      `json:"is_tax_deductible"`
}

// ExpenseFilter is used for filtering the expense list
type ExpenseFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Search    string
}

// ExpenseSummary provides totals over a filtered expense list
type ExpenseSummary struct {
	TotalAmount float64 `json:"total_amount"`
	TotalVAT    float64 `json:"total_vat"`
	Count       int     `json:"count"`
}
