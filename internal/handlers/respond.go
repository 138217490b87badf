package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"bge-backend/internal/ledger"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP statuses
func writeError(w http.ResponseWriter, err error) {
	var (
		validation   *ledger.ValidationError
		missing      *ledger.NotFoundError
		insufficient *ledger.InsufficientStockError
	)
	switch {
	case errors.As(err, &validation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &missing):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &insufficient):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ledger.ErrNumberGeneration):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
