package models

// CartItem is one line of a user's cart, joined with the catalog
// fields needed to render it and to price an order.
type CartItem struct {
	UserID   int     `json:"-"`
	ItemID   int     `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
