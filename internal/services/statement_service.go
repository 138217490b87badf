package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"bge-backend/internal/ledger"
	"bge-backend/internal/models"
	"bge-backend/pkg/currency"

	"github.com/jung-kurt/gofpdf/v2"
)

// Letterhead is the company identity printed on generated documents
type Letterhead struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// StatementService renders customer statements and expense reports as PDFs
type StatementService struct {
	Customers  CustomerStore
	Orders     OrderStore
	Returns    ReturnStore
	Payments   PaymentStore
	Expenses   ExpenseStore
	Letterhead Letterhead
}

func NewStatementService(customers CustomerStore, orders OrderStore, returns ReturnStore, payments PaymentStore, expenses ExpenseStore, letterhead Letterhead) *StatementService {
	return &StatementService{
		Customers:  customers,
		Orders:     orders,
		Returns:    returns,
		Payments:   payments,
		Expenses:   expenses,
		Letterhead: letterhead,
	}
}

// GenerateStatement renders the customer's full account statement: every
// order, return and payment, with the reconciled balance and a payment
// status badge.
func (s *StatementService) GenerateStatement(ctx context.Context, customerID int) ([]byte, error) {
	customer, err := s.Customers.Get(ctx, customerID)
	if err != nil {
		return nil, notFound("customer", customerID, err)
	}
	orders, err := s.Orders.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	returns, err := s.Returns.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	payments, err := s.Payments.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	var totalOrders, totalReturns, totalPaid float64
	for _, o := range orders {
		totalOrders += o.TotalAmount
	}
	for _, r := range returns {
		totalReturns += r.TotalAmount
	}
	for _, p := range payments {
		totalPaid += p.Amount
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Letterhead
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, s.Letterhead.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	if s.Letterhead.Address != "" {
		pdf.CellFormat(190, 5, s.Letterhead.Address, "", 1, "C", false, 0, "")
	}
	contact := s.Letterhead.Phone
	if s.Letterhead.Email != "" {
		if contact != "" {
			contact += "  |  "
		}
		contact += s.Letterhead.Email
	}
	if contact != "" {
		pdf.CellFormat(190, 5, contact, "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(190, 8, "Customer Statement", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(190, 5, fmt.Sprintf("Generated: %s", time.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Customer Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Customer Information", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", customer.Name), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Phone: %s", customer.Phone), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Address: %s", truncate(customer.Address, 40)), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Old Balance: %s", currency.Naira(customer.OldBalance)), "RB", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Orders
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Orders", "1", 1, "L", true, 0, "")
	if len(orders) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(190, 6, "No orders recorded", "1", 1, "C", false, 0, "")
	} else {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(30, 7, "Order #", "1", 0, "C", true, 0, "")
		pdf.CellFormat(30, 7, "Date", "1", 0, "C", true, 0, "")
		pdf.CellFormat(90, 7, "Items", "1", 0, "C", true, 0, "")
		pdf.CellFormat(40, 7, "Amount", "1", 1, "C", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, o := range orders {
			pdf.CellFormat(30, 6, o.OrderNumber, "1", 0, "C", false, 0, "")
			pdf.CellFormat(30, 6, o.CreatedAt.Format("02-Jan-2006"), "1", 0, "C", false, 0, "")
			pdf.CellFormat(90, 6, truncate(itemsSummary(o.Items), 55), "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 6, currency.Naira(o.TotalAmount), "1", 1, "R", false, 0, "")
		}
	}
	pdf.Ln(4)

	// Returns, only when there are any
	if len(returns) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(190, 8, "Returns", "1", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(30, 7, "Return #", "1", 0, "C", true, 0, "")
		pdf.CellFormat(30, 7, "Date", "1", 0, "C", true, 0, "")
		pdf.CellFormat(90, 7, "Reason", "1", 0, "C", true, 0, "")
		pdf.CellFormat(40, 7, "Amount", "1", 1, "C", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, ret := range returns {
			pdf.CellFormat(30, 6, ret.ReturnNumber, "1", 0, "C", false, 0, "")
			pdf.CellFormat(30, 6, ret.CreatedAt.Format("02-Jan-2006"), "1", 0, "C", false, 0, "")
			pdf.CellFormat(90, 6, truncate(ret.Reason, 55), "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 6, currency.Naira(ret.TotalAmount), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	// Payments
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 8, "Payments", "1", 1, "L", true, 0, "")
	if len(payments) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(190, 6, "No payments recorded", "1", 1, "C", false, 0, "")
	} else {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(40, 7, "Date", "1", 0, "C", true, 0, "")
		pdf.CellFormat(40, 7, "Amount", "1", 0, "C", true, 0, "")
		pdf.CellFormat(110, 7, "Note", "1", 1, "C", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, p := range payments {
			pdf.CellFormat(40, 6, p.PaidAt.Format("02-Jan-2006"), "1", 0, "C", false, 0, "")
			pdf.CellFormat(40, 6, currency.Naira(p.Amount), "1", 0, "R", false, 0, "")
			pdf.CellFormat(110, 6, truncate(p.Note, 65), "1", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(4)

	// Summary
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 8, "Account Summary", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Total Orders: %s", currency.Naira(totalOrders)), "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Total Returns: %s", currency.Naira(totalReturns)), "1", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Total Paid: %s", currency.Naira(totalPaid)), "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Wallet Credit: %s", currency.Naira(customer.Wallet)), "1", 1, "L", false, 0, "")

	status := ledger.PaymentStatus(customer.TotalDebt, totalPaid)
	switch status {
	case "paid":
		pdf.SetFillColor(200, 255, 200)
	case "partial":
		pdf.SetFillColor(255, 240, 190)
	default:
		pdf.SetFillColor(255, 200, 200)
	}
	pdf.SetFont("Arial", "B", 14)
	badge := strings.ToUpper(status)
	if customer.TotalDebt > 0 {
		badge = fmt.Sprintf("%s  -  Outstanding Debt: %s", badge, currency.Naira(customer.TotalDebt))
	}
	pdf.CellFormat(190, 10, badge, "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateExpenseReport renders the filtered expense list with totals
func (s *StatementService) GenerateExpenseReport(ctx context.Context, f models.ExpenseFilter) ([]byte, error) {
	expenses, err := s.Expenses.List(ctx, f)
	if err != nil {
		return nil, err
	}
	summary, err := s.Expenses.Summary(ctx, f)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, s.Letterhead.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(190, 8, "Expense Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(190, 5, fmt.Sprintf("Generated: %s", time.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(25, 7, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(70, 7, "Description", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Category", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Amount", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "VAT", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, e := range expenses {
		pdf.CellFormat(25, 6, e.Date.Format("02-Jan-06"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(70, 6, truncate(e.Description, 40), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, e.Category, "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, currency.Naira(e.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, currency.Naira(e.VATAmount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(63, 8, fmt.Sprintf("Entries: %d", summary.Count), "1", 0, "C", true, 0, "")
	pdf.CellFormat(63, 8, fmt.Sprintf("Total: %s", currency.Naira(summary.TotalAmount)), "1", 0, "C", true, 0, "")
	pdf.CellFormat(64, 8, fmt.Sprintf("Total VAT: %s", currency.Naira(summary.TotalVAT)), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func itemsSummary(items []models.LineItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s x%g", it.Name, it.Quantity))
	}
	return strings.Join(parts, ", ")
}

// truncate shortens a string to max runes, never splitting a multibyte
// character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
