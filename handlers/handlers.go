package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ray-remotestate/foodcourt/models"
)

// UserStore is the slice of the credential store the handlers need.
type UserStore interface {
	IsUserExists(ctx context.Context, username, email string) (bool, error)
	CreateUser(ctx context.Context, username, email, hashedPassword string) (uuid.UUID, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}

type FoodStore interface {
	ListFoodItems(ctx context.Context) ([]models.FoodItem, error)
	CreateFoodItem(ctx context.Context, item models.FoodItem) (models.FoodItem, error)
}

// OrderPlacer prices and persists an order, or explains why it cannot.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, lines []models.LineItemRequest, customerName string) (models.Order, error)
}

type Handler struct {
	users     UserStore
	catalog   FoodStore
	engine    OrderPlacer
	secretKey []byte
}

func New(users UserStore, catalog FoodStore, engine OrderPlacer, secretKey []byte) *Handler {
	return &Handler{
		users:     users,
		catalog:   catalog,
		engine:    engine,
		secretKey: secretKey,
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// isUniqueViolation reports whether err is a violated PostgreSQL unique
// constraint, the backstop for duplicate writes racing past a pre-check.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
