package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivmolchanov/goshop/internal/models"
	"github.com/ivmolchanov/goshop/internal/server/storage"
)

func testProduct(title string) *models.Product {
	return &models.Product{
		ID:          uuid.New().String(),
		Title:       title,
		Description: "test product",
		PriceCents:  1999,
		Stock:       10,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func TestStorage_CreateProduct(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	product := testProduct("Keyboard")
	require.NoError(t, s.CreateProduct(ctx, product))

	got, err := s.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", got.Title)
	assert.Equal(t, int64(1999), got.PriceCents)
}

func TestStorage_GetProduct_NotFound(t *testing.T) {
	s := setupTestStorage(t)

	_, err := s.GetProduct(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrProductNotFound)
}

func TestStorage_ListProducts(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.CreateProduct(ctx, testProduct("Mouse")))
	require.NoError(t, s.CreateProduct(ctx, testProduct("Monitor")))

	products, err := s.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestStorage_DeleteProduct(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	product := testProduct("Webcam")
	require.NoError(t, s.CreateProduct(ctx, product))

	require.NoError(t, s.DeleteProduct(ctx, product.ID))

	_, err := s.GetProduct(ctx, product.ID)
	assert.ErrorIs(t, err, storage.ErrProductNotFound)

	err = s.DeleteProduct(ctx, product.ID)
	assert.ErrorIs(t, err, storage.ErrProductNotFound)
}
