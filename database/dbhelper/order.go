package dbhelper

import (
	"context"
	"database/sql"

	"github.com/ray-remotestate/foodcourt/database"
	"github.com/ray-remotestate/foodcourt/models"
)

type OrderStore struct {
	db *sql.DB
}

func NewOrderStore(db *sql.DB) *OrderStore {
	return &OrderStore{db: db}
}

// CreateOrder inserts the order and its lines in one transaction so a
// partially written order is never visible.
func (s *OrderStore) CreateOrder(ctx context.Context, o models.Order) error {
	return database.Tx(s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO orders (id, total_price, customer_name, status, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			o.ID, o.TotalPrice, o.CustomerName, o.Status, o.CreatedAt)
		if err != nil {
			return err
		}

		for i, line := range o.Lines {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO order_items (order_id, position, item_id, name, quantity)
				VALUES ($1, $2, $3, $4, $5)`,
				o.ID, i, line.ItemID, line.Name, line.Quantity)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
