package dbhelper

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ray-remotestate/foodcourt/models"
)

type FoodStore struct {
	db *sql.DB
}

func NewFoodStore(db *sql.DB) *FoodStore {
	return &FoodStore{db: db}
}

// ListFoodItems returns the whole catalog in insertion order.
func (s *FoodStore) ListFoodItems(ctx context.Context) ([]models.FoodItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT item_id, name, rating, price, created_at
		FROM food_items
		ORDER BY created_at, item_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.FoodItem
	for rows.Next() {
		var it models.FoodItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Rating, &it.Price, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *FoodStore) CreateFoodItem(ctx context.Context, item models.FoodItem) (models.FoodItem, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO food_items (item_id, name, rating, price)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		item.ID, item.Name, item.Rating, item.Price).Scan(&item.CreatedAt)
	if err != nil {
		return models.FoodItem{}, err
	}
	return item, nil
}

// GetFoodItemByID resolves a catalog identifier to zero-or-one item; a miss
// maps to models.ErrNotFound.
func (s *FoodStore) GetFoodItemByID(ctx context.Context, id string) (models.FoodItem, error) {
	var it models.FoodItem
	err := s.db.QueryRowContext(ctx, `
		SELECT item_id, name, rating, price, created_at
		FROM food_items
		WHERE item_id = $1`, id).
		Scan(&it.ID, &it.Name, &it.Rating, &it.Price, &it.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FoodItem{}, models.ErrNotFound
	}
	if err != nil {
		return models.FoodItem{}, err
	}
	return it, nil
}
