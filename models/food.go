package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound indicates the requested record does not exist in the store.
var ErrNotFound = errors.New("not found")

// FoodItem is a purchasable catalog entry. The ID is the client-visible
// catalog identifier order lines reference; items are immutable once created.
type FoodItem struct {
	ID        string    `db:"item_id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Rating    string    `db:"rating" json:"rating,omitempty"`
	Price     float64   `db:"price" json:"price"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type OrderStatus string

const (
	StatusPending OrderStatus = "Pending"
)

// LineItemRequest is a single requested (item, quantity) pair within an
// inbound order. It is never persisted as-is.
type LineItemRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrderLine is the persisted form of a line item, copied from the request.
// Name is client-supplied and not re-validated against the catalog.
type OrderLine struct {
	ItemID   string `db:"item_id" json:"id"`
	Name     string `db:"name" json:"name"`
	Quantity int    `db:"quantity" json:"quantity"`
}

type Order struct {
	ID           uuid.UUID   `db:"id" json:"id"`
	Lines        []OrderLine `db:"-" json:"items"`
	TotalPrice   float64     `db:"total_price" json:"totalPrice"`
	CustomerName string      `db:"customer_name" json:"customerName"`
	Status       OrderStatus `db:"status" json:"status"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
}
