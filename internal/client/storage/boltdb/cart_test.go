package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivmolchanov/goshop/internal/client/storage"
)

func TestCart_AddAndList(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	item := storage.CartItem{ProductID: "p1", Title: "Keyboard", PriceCents: 4999, Quantity: 1}
	require.NoError(t, s.AddItem(ctx, item))

	items, err := s.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item, items[0])
}

func TestCart_AddMergesQuantity(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	item := storage.CartItem{ProductID: "p1", Title: "Keyboard", PriceCents: 4999, Quantity: 2}
	require.NoError(t, s.AddItem(ctx, item))
	require.NoError(t, s.AddItem(ctx, item))

	items, err := s.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(4), items[0].Quantity)
}

func TestCart_Clear(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, storage.CartItem{ProductID: "p1", Title: "Mouse", Quantity: 1}))
	require.NoError(t, s.ClearCart(ctx))

	items, err := s.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Корзина продолжает работать после очистки
	require.NoError(t, s.AddItem(ctx, storage.CartItem{ProductID: "p2", Title: "Monitor", Quantity: 1}))
	require.NoError(t, s.ClearCart(ctx))
}
