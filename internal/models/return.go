package models

import "time"

// Return represents value given back to the customer. In balance math it
// reduces what the customer owes, symmetric to a negative order.
type Return struct {
	ID           int        `json:"id"`
	CustomerID   int        `json:"customer_id"`
	OrderID      *int       `json:"order_id,omitempty"`
	ReturnNumber string     `json:"return_number"`
	Items        []LineItem `json:"items"`
	TotalAmount  float64    `json:"total_amount"`
	Reason       string     `json:"reason"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CreateReturnRequest represents the request body for creating a return
// against a customer, optionally referencing the originating order.
type CreateReturnRequest struct {
	OrderID *int              `json:"order_id"`
	Items   []LineItemRequest `json:"items"`
	Reason  string            `json:"reason"`
}

// UpdateReturnRequest replaces the return's line items wholesale
type UpdateReturnRequest struct {
	Items  []LineItemRequest `json:"items"`
	Reason string            `json:"reason"`
}
