package models

import "time"

// Payment is a customer-level payment. Payments are not tied to a specific
// order; they reduce the customer's overall balance.
type Payment struct {
	ID         int       `json:"id"`
	CustomerID int       `json:"customer_id"`
	Amount     float64   `json:"amount"`
	Note       string    `json:"note"`
	PaidAt     time.Time `json:"paid_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreatePaymentRequest represents the request body for recording a payment
type CreatePaymentRequest struct {
	Amount float64 `json:"amount"`
	Note   string  `json:"note"`
}

// UpdatePaymentRequest represents the request body for editing a payment
type UpdatePaymentRequest struct {
	Amount float64 `json:"amount"`
	Note   string  `json:"note"`
}
