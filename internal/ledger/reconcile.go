// Package ledger holds the pure bookkeeping core: the balance
// reconciliation engine and the inventory stock ledger. Nothing in this
// package touches storage; workflows feed it current records and persist
// what it returns.
package ledger

import (
	"math"

	"bge-backend/internal/models"
)

// Balance is the derived pair on a customer. At most one of the two fields
// is non-zero: a customer either owes money or holds prepaid credit.
type Balance struct {
	TotalDebt float64
	Wallet    float64
}

// Reconcile recomputes a customer's balance from their full history.
//
//	netBalance = totalPaid - (oldBalance + totalOrders - totalReturns)
//
// A non-negative net means the customer has paid in full and the surplus is
// wallet credit; a negative net is outstanding debt. This is the only
// legitimate way total_debt and wallet are ever set: every mutation to
// orders, returns or payments must be followed by a call here. Overpayment
// is legal and simply lands in the wallet.
func Reconcile(oldBalance float64, orders []*models.Order, returns []*models.Return, payments []*models.Payment) Balance {
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

	net := totalPaid - (oldBalance + totalOrders - totalReturns)
	if net >= 0 {
		return Balance{TotalDebt: 0, Wallet: net}
	}
	return Balance{TotalDebt: math.Abs(net), Wallet: 0}
}

// BuildItems derives stored line items from a request: totals are always
// computed here, never trusted from the client.
func BuildItems(reqs []models.LineItemRequest) ([]models.LineItem, float64, error) {
	if len(reqs) == 0 {
		return nil, 0, &ValidationError{Field: "items", Message: "at least one line item is required"}
	}

	items := make([]models.LineItem, 0, len(reqs))
	var total float64
	for _, r := range reqs {
		if r.Name == "" {
			return nil, 0, &ValidationError{Field: "items.name", Message: "line item name is required"}
		}
		if r.Quantity <= 0 {
			return nil, 0, &ValidationError{Field: "items.quantity", Message: "quantity must be greater than 0"}
		}
		if r.UnitPrice < 0 {
			return nil, 0, &ValidationError{Field: "items.unit_price", Message: "unit price cannot be negative"}
		}
		item := models.LineItem{
			Name:       r.Name,
			Quantity:   r.Quantity,
			UnitPrice:  r.UnitPrice,
			TotalPrice: r.Quantity * r.UnitPrice,
			ProductID:  r.ProductID,
		}
		items = append(items, item)
		total += item.TotalPrice
	}
	return items, total, nil
}

// PaymentStatus classifies a reconciled customer for display:
// paid when nothing is owed, partial when something has been paid against a
// remaining debt, unpaid otherwise.
func PaymentStatus(totalDebt, totalPaid float64) string {
	switch {
	case totalDebt == 0:
		return "paid"
	case totalPaid > 0:
		return "partial"
	default:
		return "unpaid"
	}
}
