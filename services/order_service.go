package services

import (
	"context"

	"web-store/models"
)

type OrderService struct {
	users  UserStore
	carts  CartStore
	orders OrderStore
}

func NewOrderService(users UserStore, carts CartStore, orders OrderStore) *OrderService {
	return &OrderService{users: users, carts: carts, orders: orders}
}

// Submit snapshots the user's cart into an order and clears the
// cart. An empty cart still produces a zero-total order.
func (s *OrderService) Submit(ctx context.Context, username string) (*models.Order, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	cart, err := s.carts.GetCart(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID: user.ID,
		Items:  make([]models.OrderItem, 0, len(cart)),
	}
	for _, line := range cart {
		order.Total += line.Price * float64(line.Quantity)
		order.Items = append(order.Items, models.OrderItem{
			ItemID:   line.ItemID,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) History(ctx context.Context, username string) ([]models.Order, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.orders.FindByUser(ctx, user.ID)
}
