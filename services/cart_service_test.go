package services

import (
	"context"
	"testing"

	"web-store/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture(t *testing.T) (*CartService, *memStores, string) {
	t.Helper()
	stores := newMemStores()
	stores.addItem(1, "Pen", 2.50)
	stores.addItem(2, "Notebook", 4.00)

	user := &models.User{Username: "testUser", Password: "hash"}
	require.NoError(t, stores.Create(context.Background(), user))

	svc := NewCartService(stores, itemStoreAdapter{stores}, stores)
	return svc, stores, user.Username
}

func TestCartService_AddMergesQuantities(t *testing.T) {
	ctx := context.Background()
	svc, _, username := newCartFixture(t)

	cart, err := svc.AddToCart(ctx, username, 1, 2)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)

	cart, err = svc.AddToCart(ctx, username, 1, 3)
	require.NoError(t, err)
	require.Len(t, cart, 1, "same item must merge into one line")
	assert.Equal(t, 5, cart[0].Quantity)
	assert.Equal(t, "Pen", cart[0].Name)
}

func TestCartService_AddDistinctItems(t *testing.T) {
	ctx := context.Background()
	svc, _, username := newCartFixture(t)

	_, err := svc.AddToCart(ctx, username, 1, 1)
	require.NoError(t, err)
	cart, err := svc.AddToCart(ctx, username, 2, 4)
	require.NoError(t, err)

	require.Len(t, cart, 2)
	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, 4, cart[1].Quantity)
}

func TestCartService_RemovePartial(t *testing.T) {
	ctx := context.Background()
	svc, _, username := newCartFixture(t)

	_, err := svc.AddToCart(ctx, username, 1, 5)
	require.NoError(t, err)

	cart, err := svc.RemoveFromCart(ctx, username, 1, 2)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)
}

func TestCartService_RemoveAtOrBelowZeroDropsLine(t *testing.T) {
	ctx := context.Background()
	svc, _, username := newCartFixture(t)

	_, err := svc.AddToCart(ctx, username, 1, 2)
	require.NoError(t, err)

	cart, err := svc.RemoveFromCart(ctx, username, 1, 2)
	require.NoError(t, err)
	assert.Empty(t, cart, "removing the full quantity drops the line")

	_, err = svc.AddToCart(ctx, username, 1, 2)
	require.NoError(t, err)
	cart, err = svc.RemoveFromCart(ctx, username, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, cart, "over-removal drops the line instead of going negative")
}

func TestCartService_RemoveMissingCartLineIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, _, username := newCartFixture(t)

	_, err := svc.AddToCart(ctx, username, 1, 2)
	require.NoError(t, err)

	// item 2 exists in the catalog but not in the cart
	cart, err := svc.RemoveFromCart(ctx, username, 2, 1)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestCartService_RemoveUnknownCatalogItem(t *testing.T) {
	ctx := context.Background()
	svc, stores, username := newCartFixture(t)

	_, err := svc.AddToCart(ctx, username, 1, 2)
	require.NoError(t, err)

	_, err = svc.RemoveFromCart(ctx, username, 99, 1)
	assert.ErrorIs(t, err, ErrItemNotFound)

	user, _ := stores.FindByUsername(ctx, username)
	cart, _ := stores.GetCart(ctx, user.ID)
	require.Len(t, cart, 1, "cart must be unchanged")
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestCartService_AddUnknownCatalogItem(t *testing.T) {
	ctx := context.Background()
	svc, _, username := newCartFixture(t)

	_, err := svc.AddToCart(ctx, username, 99, 1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCartService_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCartFixture(t)

	_, err := svc.AddToCart(ctx, "nobody", 1, 1)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.RemoveFromCart(ctx, "nobody", 1, 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
