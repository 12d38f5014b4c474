package storage

import (
	"context"

	"github.com/ivmolchanov/goshop/internal/models"
)

// ProductStorage defines interface for catalog persistence
type ProductStorage interface {
	// CreateProduct creates a new product in the catalog
	CreateProduct(ctx context.Context, product *models.Product) error

	// GetProduct retrieves product by ID
	// Returns ErrProductNotFound if product doesn't exist
	GetProduct(ctx context.Context, productID string) (*models.Product, error)

	// ListProducts returns all products ordered by creation time
	ListProducts(ctx context.Context) ([]*models.Product, error)

	// DeleteProduct removes product by ID
	// Returns ErrProductNotFound if product doesn't exist
	DeleteProduct(ctx context.Context, productID string) error
}
