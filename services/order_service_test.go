package services

import (
	"context"
	"testing"

	"web-store/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderFixture(t *testing.T) (*OrderService, *CartService, *memStores, string) {
	t.Helper()
	stores := newMemStores()
	stores.addItem(1, "Pen", 2.50)
	stores.addItem(2, "Notebook", 4.00)

	user := &models.User{Username: "testUser", Password: "hash"}
	require.NoError(t, stores.Create(context.Background(), user))

	orderSvc := NewOrderService(stores, stores, orderStoreAdapter{stores})
	cartSvc := NewCartService(stores, itemStoreAdapter{stores}, stores)
	return orderSvc, cartSvc, stores, user.Username
}

func TestOrderService_SubmitTotalsAndClearsCart(t *testing.T) {
	ctx := context.Background()
	orderSvc, cartSvc, stores, username := newOrderFixture(t)

	_, err := cartSvc.AddToCart(ctx, username, 1, 1)
	require.NoError(t, err)

	order, err := orderSvc.Submit(ctx, username)
	require.NoError(t, err)
	assert.InDelta(t, 2.50, order.Total, 0.0001)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Pen", order.Items[0].Name)
	assert.Equal(t, 1, order.Items[0].Quantity)

	user, _ := stores.FindByUsername(ctx, username)
	cart, _ := stores.GetCart(ctx, user.ID)
	assert.Empty(t, cart, "cart must be cleared after submission")
}

func TestOrderService_SubmitMultiLineTotal(t *testing.T) {
	ctx := context.Background()
	orderSvc, cartSvc, _, username := newOrderFixture(t)

	_, err := cartSvc.AddToCart(ctx, username, 1, 3) // 3 x 2.50
	require.NoError(t, err)
	_, err = cartSvc.AddToCart(ctx, username, 2, 2) // 2 x 4.00
	require.NoError(t, err)

	order, err := orderSvc.Submit(ctx, username)
	require.NoError(t, err)
	assert.InDelta(t, 15.50, order.Total, 0.0001)
	assert.Len(t, order.Items, 2)
}

func TestOrderService_SubmitEmptyCart(t *testing.T) {
	ctx := context.Background()
	orderSvc, _, _, username := newOrderFixture(t)

	order, err := orderSvc.Submit(ctx, username)
	require.NoError(t, err)
	assert.Zero(t, order.Total)
	assert.Empty(t, order.Items)
	assert.NotZero(t, order.ID, "an empty cart still produces an order")
}

func TestOrderService_SubmitUnknownUser(t *testing.T) {
	ctx := context.Background()
	orderSvc, _, _, _ := newOrderFixture(t)

	_, err := orderSvc.Submit(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestOrderService_History(t *testing.T) {
	ctx := context.Background()
	orderSvc, cartSvc, _, username := newOrderFixture(t)

	_, err := cartSvc.AddToCart(ctx, username, 1, 1)
	require.NoError(t, err)
	first, err := orderSvc.Submit(ctx, username)
	require.NoError(t, err)

	_, err = cartSvc.AddToCart(ctx, username, 2, 1)
	require.NoError(t, err)
	second, err := orderSvc.Submit(ctx, username)
	require.NoError(t, err)

	orders, err := orderSvc.History(ctx, username)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID, "oldest order first")
	assert.Equal(t, second.ID, orders[1].ID)
}

func TestOrderService_HistoryUnknownUser(t *testing.T) {
	ctx := context.Background()
	orderSvc, _, _, _ := newOrderFixture(t)

	_, err := orderSvc.History(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
