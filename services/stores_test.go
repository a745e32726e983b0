package services

import (
	"context"
	"sort"
	"time"

	"web-store/models"
)

// memStores is an in-memory implementation of all four store
// interfaces, mirroring the SQL stores' behavior: merge-on-add cart
// lines, (nil, nil) for absent rows, order creation clears the cart.
type memStores struct {
	users      map[string]*models.User
	items      map[int]models.Item
	carts      map[int]map[int]int // userID -> itemID -> quantity
	orders     []models.Order
	lastUserID int
}

func newMemStores() *memStores {
	return &memStores{
		users: make(map[string]*models.User),
		items: make(map[int]models.Item),
		carts: make(map[int]map[int]int),
	}
}

func (m *memStores) addItem(id int, name string, price float64) {
	m.items[id] = models.Item{ID: id, Name: name, Price: price}
}

func (m *memStores) Create(ctx context.Context, user *models.User) error {
	m.lastUserID++
	user.ID = m.lastUserID
	user.CreatedAt = time.Now()
	m.users[user.Username] = user
	return nil
}

func (m *memStores) FindByID(ctx context.Context, id int) (*models.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (m *memStores) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if user, ok := m.users[username]; ok {
		return user, nil
	}
	return nil, nil
}

func (m *memStores) FindAll(ctx context.Context) ([]models.Item, error) {
	items := []models.Item{}
	for _, item := range m.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (m *memStores) FindItemByID(ctx context.Context, id int) (*models.Item, error) {
	if item, ok := m.items[id]; ok {
		return &item, nil
	}
	return nil, nil
}

func (m *memStores) FindByName(ctx context.Context, name string) ([]models.Item, error) {
	items := []models.Item{}
	for _, item := range m.items {
		if item.Name == name {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *memStores) GetCart(ctx context.Context, userID int) ([]models.CartItem, error) {
	cart := []models.CartItem{}
	for itemID, quantity := range m.carts[userID] {
		item := m.items[itemID]
		cart = append(cart, models.CartItem{
			UserID:   userID,
			ItemID:   itemID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: quantity,
		})
	}
	sort.Slice(cart, func(i, j int) bool { return cart[i].ItemID < cart[j].ItemID })
	return cart, nil
}

func (m *memStores) AddItem(ctx context.Context, userID, itemID, quantity int) error {
	if m.carts[userID] == nil {
		m.carts[userID] = make(map[int]int)
	}
	m.carts[userID][itemID] += quantity
	return nil
}

func (m *memStores) RemoveItem(ctx context.Context, userID, itemID, quantity int) error {
	lines := m.carts[userID]
	if lines == nil {
		return nil
	}
	if current, ok := lines[itemID]; ok {
		if quantity >= current {
			delete(lines, itemID)
		} else {
			lines[itemID] = current - quantity
		}
	}
	return nil
}

func (m *memStores) CreateOrder(ctx context.Context, order *models.Order) error {
	order.ID = len(m.orders) + 1
	order.CreatedAt = time.Now()
	m.orders = append(m.orders, *order)
	delete(m.carts, order.UserID)
	return nil
}

func (m *memStores) FindByUser(ctx context.Context, userID int) ([]models.Order, error) {
	orders := []models.Order{}
	for _, order := range m.orders {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

// itemStoreAdapter and orderStoreAdapter let memStores satisfy the
// ItemStore and OrderStore interfaces despite the method name
// clashes with UserStore.
type itemStoreAdapter struct{ *memStores }

func (a itemStoreAdapter) FindByID(ctx context.Context, id int) (*models.Item, error) {
	return a.memStores.FindItemByID(ctx, id)
}

type orderStoreAdapter struct{ *memStores }

func (a orderStoreAdapter) Create(ctx context.Context, order *models.Order) error {
	return a.memStores.CreateOrder(ctx, order)
}
