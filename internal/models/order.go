package models

import "time"

// LineItem is a single product line on an order or return. TotalPrice is
// always Quantity * UnitPrice, never stored independently.
type LineItem struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
	ProductID  *int    `json:"product_id,omitempty"` // set when the line references warehouse inventory
}

type Order struct {
	ID          int        `json:"id"`
	CustomerID  int        `json:"customer_id"`
	OrderNumber string     `json:"order_number"`
	Items       []LineItem `json:"items"`
	TotalAmount float64    `json:"total_amount"`
	WalletUsed  float64    `json:"wallet_used"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// LineItemRequest is a line item as submitted by the client. TotalPrice is
// computed server-side.
type LineItemRequest struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	ProductID *int    `json:"product_id"`
}

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	CustomerID int               `json:"customer_id"`
	Items      []LineItemRequest `json:"items"`
}

// UpdateOrderRequest replaces the order's line items wholesale
type UpdateOrderRequest struct {
	Items []LineItemRequest `json:"items"`
}

// OrderWithCustomer includes the owning customer's name for list views
type OrderWithCustomer struct {
	Order
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}
