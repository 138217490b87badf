package ledger

import (
	"errors"
	"fmt"
)

// ErrNumberGeneration is returned when a unique order/return number could
// not be allocated within the retry budget. The operator must retry.
var ErrNumberGeneration = errors.New("failed to generate a unique document number")

// ValidationError rejects a request before anything is persisted
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports an id that did not resolve to a stored entity
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// InsufficientStockError rejects a deduction that exceeds current stock
type InsufficientStockError struct {
	Product   string
	Requested float64
	Available float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("cannot deduct %g of %s, only %g in stock", e.Requested, e.Product, e.Available)
}

// ReversalError reports a stock reversal that could not be applied. Callers
// log it and continue: historical correctness of money reconciliation takes
// priority over inventory precision.
type ReversalError struct {
	ProductID int
	Cause     error
}

func (e *ReversalError) Error() string {
	return fmt.Sprintf("stock reversal failed for product %d: %v", e.ProductID, e.Cause)
}

func (e *ReversalError) Unwrap() error { return e.Cause }
