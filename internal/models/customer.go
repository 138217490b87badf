package models

import "time"

type Customer struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Address    string    `json:"address"`
	OldBalance float64   `json:"old_balance"`
	TotalDebt  float64   `json:"total_debt"`
	Wallet     float64   `json:"wallet"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateCustomerRequest represents the request body for creating a customer.
// OldBalance is the legacy debt carried over from before the system.
type CreateCustomerRequest struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	Address    string  `json:"address"`
	OldBalance float64 `json:"old_balance"`
}

// UpdateCustomerRequest represents the request body for updating a customer
type UpdateCustomerRequest struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	Address    string  `json:"address"`
	OldBalance float64 `json:"old_balance"`
}

// CustomerHistory bundles everything shown on the customer detail page
type CustomerHistory struct {
	Customer *Customer  `json:"customer"`
	Orders   []*Order   `json:"orders"`
	Returns  []*Return  `json:"returns"`
	Payments []*Payment `json:"payments"`
}
