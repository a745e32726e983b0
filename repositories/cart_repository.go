package repositories

import (
	"context"

	"web-store/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CartRepository struct {
	db *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) GetCart(ctx context.Context, userID int) ([]models.CartItem, error) {
	query := `
		SELECT c.user_id, c.item_id, i.name, i.price, c.quantity
		FROM cart_items c
		JOIN items i ON i.id = c.item_id
		WHERE c.user_id = $1
		ORDER BY c.item_id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart := []models.CartItem{}
	for rows.Next() {
		var line models.CartItem
		if err := rows.Scan(&line.UserID, &line.ItemID, &line.Name, &line.Price, &line.Quantity); err != nil {
			return nil, err
		}
		cart = append(cart, line)
	}
	return cart, rows.Err()
}

// AddItem merges quantity into an existing line or inserts a new
// one. The upsert makes concurrent adds for the same line serialize
// on the row instead of losing updates.
func (r *CartRepository) AddItem(ctx context.Context, userID, itemID, quantity int) error {
	query := `
		INSERT INTO cart_items (user_id, item_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, item_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	`
	_, err := r.db.Exec(ctx, query, userID, itemID, quantity)
	return err
}

// RemoveItem decrements a line, deleting it when the remaining
// quantity would reach zero or below. Removing a line that does not
// exist is a no-op.
func (r *CartRepository) RemoveItem(ctx context.Context, userID, itemID, quantity int) error {
	updateQuery := `
		UPDATE cart_items SET quantity = quantity - $3
		WHERE user_id = $1 AND item_id = $2 AND quantity > $3
	`
	tag, err := r.db.Exec(ctx, updateQuery, userID, itemID, quantity)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	deleteQuery := `DELETE FROM cart_items WHERE user_id = $1 AND item_id = $2`
	_, err = r.db.Exec(ctx, deleteQuery, userID, itemID)
	return err
}
