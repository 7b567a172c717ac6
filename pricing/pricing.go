// Package pricing implements order placement. Totals are always recomputed
// from the catalog; prices arriving with a request are never trusted.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ray-remotestate/foodcourt/models"
)

var (
	ErrNoItems          = errors.New("items must be a non-empty array")
	ErrCustomerRequired = errors.New("customer name is required")
	ErrBadQuantity      = errors.New("item quantity must be greater than 0")
)

// ItemNotFoundError reports the first requested line whose catalog
// identifier resolved to nothing. The order is never persisted in that case.
type ItemNotFoundError struct {
	Name string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("food item %s not found", e.Name)
}

// CatalogStore resolves catalog identifiers to zero-or-one food item,
// signalling a miss with models.ErrNotFound.
type CatalogStore interface {
	GetFoodItemByID(ctx context.Context, id string) (models.FoodItem, error)
}

// OrderStore persists a fully priced order.
type OrderStore interface {
	CreateOrder(ctx context.Context, o models.Order) error
}

type Engine struct {
	catalog CatalogStore
	orders  OrderStore
}

func NewEngine(catalog CatalogStore, orders OrderStore) *Engine {
	return &Engine{catalog: catalog, orders: orders}
}

// PlaceOrder validates the request, resolves every line against the catalog
// in input order and persists the priced order. Resolution short-circuits:
// the first unknown item aborts the whole call and nothing is written.
func (e *Engine) PlaceOrder(ctx context.Context, lines []models.LineItemRequest, customerName string) (models.Order, error) {
	if len(lines) == 0 {
		return models.Order{}, ErrNoItems
	}
	if customerName == "" {
		return models.Order{}, ErrCustomerRequired
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return models.Order{}, ErrBadQuantity
		}
	}

	var totalPrice float64
	orderLines := make([]models.OrderLine, 0, len(lines))
	for _, line := range lines {
		item, err := e.catalog.GetFoodItemByID(ctx, line.ID)
		if errors.Is(err, models.ErrNotFound) {
			return models.Order{}, &ItemNotFoundError{Name: line.Name}
		}
		if err != nil {
			return models.Order{}, fmt.Errorf("resolve food item %q: %w", line.ID, err)
		}
		totalPrice += item.Price * float64(line.Quantity)
		orderLines = append(orderLines, models.OrderLine{
			ItemID:   line.ID,
			Name:     line.Name,
			Quantity: line.Quantity,
		})
	}

	order := models.Order{
		ID:           uuid.New(),
		Lines:        orderLines,
		TotalPrice:   totalPrice,
		CustomerName: customerName,
		Status:       models.StatusPending,
		CreatedAt:    time.Now().UTC(),
	}
	if err := e.orders.CreateOrder(ctx, order); err != nil {
		return models.Order{}, fmt.Errorf("save order: %w", err)
	}
	return order, nil
}
