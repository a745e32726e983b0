package services

import (
	"context"

	"web-store/models"
)

type ItemService struct {
	items ItemStore
}

func NewItemService(items ItemStore) *ItemService {
	return &ItemService{items: items}
}

func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	return s.items.FindAll(ctx)
}

func (s *ItemService) GetByID(ctx context.Context, id int) (*models.Item, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *ItemService) GetByName(ctx context.Context, name string) ([]models.Item, error) {
	items, err := s.items.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrItemNotFound
	}
	return items, nil
}
