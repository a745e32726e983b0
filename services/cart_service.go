package services

import (
	"context"

	"web-store/models"
)

type CartService struct {
	users UserStore
	items ItemStore
	carts CartStore
}

func NewCartService(users UserStore, items ItemStore, carts CartStore) *CartService {
	return &CartService{users: users, items: items, carts: carts}
}

// AddToCart merges quantity into the user's cart line for the item
// and returns the updated cart.
func (s *CartService) AddToCart(ctx context.Context, username string, itemID, quantity int) ([]models.CartItem, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if _, err := s.resolveItem(ctx, itemID); err != nil {
		return nil, err
	}

	if err := s.carts.AddItem(ctx, user.ID, itemID, quantity); err != nil {
		return nil, err
	}
	return s.carts.GetCart(ctx, user.ID)
}

// RemoveFromCart decrements the matching cart line, dropping it when
// the quantity reaches zero or below. Removing an item the cart does
// not hold succeeds as a no-op; an item id missing from the catalog
// is still an error.
func (s *CartService) RemoveFromCart(ctx context.Context, username string, itemID, quantity int) ([]models.CartItem, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if _, err := s.resolveItem(ctx, itemID); err != nil {
		return nil, err
	}

	if err := s.carts.RemoveItem(ctx, user.ID, itemID, quantity); err != nil {
		return nil, err
	}
	return s.carts.GetCart(ctx, user.ID)
}

func (s *CartService) resolveUser(ctx context.Context, username string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *CartService) resolveItem(ctx context.Context, itemID int) (*models.Item, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}
