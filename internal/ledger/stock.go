package ledger

import (
	"math"

	"bge-backend/internal/models"
)

// ApplyStock computes the stock movement for one event against a product's
// current level. It returns the event to append and the new stock level;
// the caller persists both in one transaction. The history is the source of
// truth and current_stock is a cached projection of the latest event.
//
// Semantics per type:
//   - addition:   newStock = current + quantity, quantity must be > 0
//   - deduction:  fails with InsufficientStock when quantity > current
//   - adjustment: quantity is the target level; the recorded event quantity
//     is the magnitude of the change, not the target value
func ApplyStock(product *models.Product, typ models.StockEventType, quantity float64, reason string) (models.StockEvent, error) {
	previous := product.CurrentStock
	var newStock float64

	switch typ {
	case models.StockAddition:
		if quantity <= 0 {
			return models.StockEvent{}, &ValidationError{Field: "quantity", Message: "quantity must be greater than 0"}
		}
		newStock = previous + quantity
	case models.StockDeduction:
		if quantity <= 0 {
			return models.StockEvent{}, &ValidationError{Field: "quantity", Message: "quantity must be greater than 0"}
		}
		if quantity > previous {
			return models.StockEvent{}, &InsufficientStockError{
				Product:   product.Name,
				Requested: quantity,
				Available: previous,
			}
		}
		newStock = previous - quantity
	case models.StockAdjustment:
		if quantity < 0 {
			return models.StockEvent{}, &ValidationError{Field: "quantity", Message: "target stock cannot be negative"}
		}
		newStock = quantity
		quantity = math.Abs(newStock - previous)
	default:
		return models.StockEvent{}, &ValidationError{Field: "type", Message: "must be addition, deduction or adjustment"}
	}

	if reason == "" {
		reason = "Stock " + string(typ)
	}

	return models.StockEvent{
		ProductID:     product.ID,
		Type:          typ,
		Quantity:      quantity,
		PreviousStock: previous,
		NewStock:      newStock,
		Reason:        reason,
	}, nil
}

// ReverseStock builds the inverse of a previously applied event, used when
// the order or return that caused it is edited or deleted. An addition
// becomes a deduction of the same quantity and vice versa. The reversal is
// applied against the product's current stock, clamping at zero so that
// stock is never driven negative by undoing history.
func ReverseStock(product *models.Product, original models.StockEvent, reason string) models.StockEvent {
	previous := product.CurrentStock
	var typ models.StockEventType
	var newStock float64

	// Direction comes from what the original event actually did to the
	// stock, so adjustments reverse correctly in either direction.
	if original.NewStock >= original.PreviousStock {
		typ = models.StockDeduction
		newStock = previous - original.Quantity
		if newStock < 0 {
			newStock = 0
		}
	} else {
		typ = models.StockAddition
		newStock = previous + original.Quantity
	}

	return models.StockEvent{
		ProductID:     product.ID,
		Type:          typ,
		Quantity:      math.Abs(newStock - previous),
		PreviousStock: previous,
		NewStock:      newStock,
		Reason:        reason,
	}
}
