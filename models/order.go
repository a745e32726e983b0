package models

import "time"

// Order is an immutable snapshot of a cart at submission time.
// Item names and prices are copied so later catalog edits do not
// rewrite history.
type Order struct {
	ID        int         `json:"id"`
	UserID    int         `json:"user_id"`
	Total     float64     `json:"total"`
	Items     []OrderItem `json:"items"`
	CreatedAt time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID       int     `json:"id"`
	OrderID  int     `json:"-"`
	ItemID   int     `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
