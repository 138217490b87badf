package services

import (
	"context"

	"bge-backend/internal/ledger"
	"bge-backend/internal/metrics"
)

// reconcileCustomer recomputes and persists a customer's derived balance
// from their full order, return and payment history. Every workflow that
// mutates any of those calls this afterwards.
//
// The history reads and the balance write are not a single transaction.
// Two concurrent mutations on the same customer can interleave, but each
// finishes with a full recompute, so the last writer leaves the balance
// consistent with the history it saw.
func reconcileCustomer(ctx context.Context, customers CustomerStore, orders OrderStore, returns ReturnStore, payments PaymentStore, customerID int) (ledger.Balance, error) {
	customer, err := customers.Get(ctx, customerID)
	if err != nil {
		return ledger.Balance{}, notFound("customer", customerID, err)
	}

	os, err := orders.ListByCustomer(ctx, customerID)
	if err != nil {
		return ledger.Balance{}, err
	}
	rs, err := returns.ListByCustomer(ctx, customerID)
	if err != nil {
		return ledger.Balance{}, err
	}
	ps, err := payments.ListByCustomer(ctx, customerID)
	if err != nil {
		return ledger.Balance{}, err
	}

	balance := ledger.Reconcile(customer.OldBalance, os, rs, ps)
	if err := customers.UpdateBalance(ctx, customerID, balance.TotalDebt, balance.Wallet); err != nil {
		return ledger.Balance{}, err
	}
	metrics.ReconciliationsTotal.Inc()
	return balance, nil
}
