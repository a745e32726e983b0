package repositories

import (
	"context"
	"time"

	"web-store/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists an order snapshot and clears the owning user's
// cart in a single transaction, so a crash cannot leave a duplicated
// order next to a nonempty cart.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	orderQuery := `
		INSERT INTO orders (user_id, total, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	if err := tx.QueryRow(ctx, orderQuery, order.UserID, order.Total, time.Now()).
		Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	itemQuery := `
		INSERT INTO order_items (order_id, item_id, name, price, quantity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	for i := range order.Items {
		line := &order.Items[i]
		line.OrderID = order.ID
		if err := tx.QueryRow(ctx, itemQuery,
			order.ID, line.ItemID, line.Name, line.Price, line.Quantity,
		).Scan(&line.ID); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, order.UserID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// FindByUser returns a user's orders oldest first, items included.
func (r *OrderRepository) FindByUser(ctx context.Context, userID int) ([]models.Order, error) {
	query := `
		SELECT id, user_id, total, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.Total, &order.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.findOrderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *OrderRepository) findOrderItems(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	query := `
		SELECT id, order_id, item_id, name, price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var line models.OrderItem
		if err := rows.Scan(&line.ID, &line.OrderID, &line.ItemID, &line.Name, &line.Price, &line.Quantity); err != nil {
			return nil, err
		}
		items = append(items, line)
	}
	return items, rows.Err()
}
