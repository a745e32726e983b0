package services

import (
	"context"

	"web-store/models"
)

// Store interfaces are satisfied by the pgx repositories and by
// in-memory fakes in tests. Find methods return (nil, nil) for
// absent rows; services translate that into not-found errors.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type ItemStore interface {
	FindAll(ctx context.Context) ([]models.Item, error)
	FindByID(ctx context.Context, id int) (*models.Item, error)
	FindByName(ctx context.Context, name string) ([]models.Item, error)
}

type CartStore interface {
	GetCart(ctx context.Context, userID int) ([]models.CartItem, error)
	AddItem(ctx context.Context, userID, itemID, quantity int) error
	RemoveItem(ctx context.Context, userID, itemID, quantity int) error
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindByUser(ctx context.Context, userID int) ([]models.Order, error)
}
