package models

import "time"

// StockEventType classifies a stock history entry
type StockEventType string

const (
	StockAddition   StockEventType = "addition"
	StockDeduction  StockEventType = "deduction"
	StockAdjustment StockEventType = "adjustment"
)

// StockEvent is one immutable entry in a product's inventory history.
// NewStock is always derivable from PreviousStock and the recorded delta;
// the product's current_stock must equal the NewStock of its latest event.
type StockEvent struct {
	ID            int            `json:"id"`
	ProductID     int            `json:"product_id"`
	Type          StockEventType `json:"type"`
	Quantity      float64        `json:"quantity"`
	PreviousStock float64        `json:"previous_stock"`
	NewStock      float64        `json:"new_stock"`
	Reason        string         `json:"reason"`
	OrderID       *int           `json:"order_id,omitempty"`
	ReturnID      *int           `json:"return_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

type Product struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	Unit              string    `json:"unit"`
	CurrentStock      float64   `json:"current_stock"`
	UnitPrice         float64   `json:"unit_price"`
	LowStockThreshold float64   `json:"low_stock_threshold"`
	Description       string    `json:"description"`
	Category          string    `json:"category"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CreateProductRequest represents the request body for registering a product
type CreateProductRequest struct {
	Name              string  `json:"name"`
	Unit              string  `json:"unit"`
	CurrentStock      float64 `json:"current_stock"`
	UnitPrice         float64 `json:"unit_price"`
	LowStockThreshold float64 `json:"low_stock_threshold"`
	Description       string  `json:"description"`
	Category          string  `json:"category"`
}

// UpdateProductRequest represents the request body for editing product
// details. Stock is not editable here; it only moves through stock events.
type UpdateProductRequest struct {
	Name              string   `json:"name"`
	Unit              string   `json:"unit"`
	UnitPrice         *float64 `json:"unit_price"`
	LowStockThreshold *float64 `json:"low_stock_threshold"`
	Description       *string  `json:"description"`
	Category          *string  `json:"category"`
	IsActive          *bool    `json:"is_active"`
}

// StockMutationRequest represents a manual stock movement. For adjustments
// the quantity is the target stock level, not a delta.
type StockMutationRequest struct {
	Type     StockEventType `json:"type"`
	Quantity float64        `json:"quantity"`
	Reason   string         `json:"reason"`
}
