package services

import (
	"context"
	"log"

	"bge-backend/internal/ledger"
	"bge-backend/internal/models"
)

// reverseStockEvents undoes previously applied stock events, e.g. when the
// order or return that caused them is edited or deleted. A reversal that
// cannot be applied is logged and skipped: the money side of the mutation
// still goes through, and inventory is corrected manually via adjustment.
func reverseStockEvents(ctx context.Context, products ProductStore, events []*models.StockEvent, reason string, tag func(*models.StockEvent)) {
	for _, ev := range events {
		product, err := products.Get(ctx, ev.ProductID)
		if err != nil {
			log.Printf("[Stock] %v", &ledger.ReversalError{ProductID: ev.ProductID, Cause: err})
			continue
		}
		rev := ledger.ReverseStock(product, *ev, reason)
		if tag != nil {
			tag(&rev)
		}
		if err := products.ApplyEvent(ctx, &rev); err != nil {
			log.Printf("[Stock] %v", &ledger.ReversalError{ProductID: ev.ProductID, Cause: err})
		}
	}
}

// stageReversals computes reversal events without persisting them, for
// workflows that must validate further stock movements against the
// post-reversal levels before committing anything. Products read through
// the shared cache carry the simulated level forward; a product that no
// longer exists is logged and skipped, same as the persisting path.
func stageReversals(ctx context.Context, products ProductStore, cache map[int]*models.Product, events []*models.StockEvent, reason string, tag func(*models.StockEvent)) []models.StockEvent {
	var staged []models.StockEvent
	for _, ev := range events {
		product, err := cachedProduct(ctx, products, cache, ev.ProductID)
		if err != nil {
			log.Printf("[Stock] %v", &ledger.ReversalError{ProductID: ev.ProductID, Cause: err})
			continue
		}
		rev := ledger.ReverseStock(product, *ev, reason)
		if tag != nil {
			tag(&rev)
		}
		product.CurrentStock = rev.NewStock
		staged = append(staged, rev)
	}
	return staged
}

func cachedProduct(ctx context.Context, products ProductStore, cache map[int]*models.Product, id int) (*models.Product, error) {
	if p, ok := cache[id]; ok {
		return p, nil
	}
	p, err := products.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	cache[id] = p
	return p, nil
}
