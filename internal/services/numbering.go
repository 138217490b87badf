package services

import (
	"context"
	"fmt"

	"bge-backend/internal/ledger"
)

// numberAttempts bounds the search for a free sequential number
const numberAttempts = 10

type numberStore interface {
	MaxNumber(ctx context.Context) (int, error)
	NumberExists(ctx context.Context, number string) (bool, error)
}

// nextDocumentNumber allocates the next free number in a prefix sequence,
// e.g. ORD-00042. It starts at one past the highest existing sequence and
// probes forward; after numberAttempts collisions it gives up with
// ErrNumberGeneration rather than looping forever.
func nextDocumentNumber(ctx context.Context, store numberStore, prefix string) (string, error) {
	max, err := store.MaxNumber(ctx)
	if err != nil {
		return "", err
	}

	for attempt := 0; attempt < numberAttempts; attempt++ {
		candidate := fmt.Sprintf("%s-%05d", prefix, max+1+attempt)
		exists, err := store.NumberExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", ledger.ErrNumberGeneration
}
