package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ivmolchanov/goshop/internal/models"
	"github.com/ivmolchanov/goshop/internal/server/storage"
)

// CreateProduct creates a new product in the catalog
func (s *Storage) CreateProduct(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (id, title, description, price_cents, stock, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		product.ID,
		product.Title,
		product.Description,
		product.PriceCents,
		product.Stock,
		product.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	return nil
}

// GetProduct retrieves product by ID
func (s *Storage) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	query := `
		SELECT id, title, description, price_cents, stock, created_at
		FROM products
		WHERE id = ?
	`

	product := &models.Product{}
	err := s.db.QueryRowContext(ctx, query, productID).Scan(
		&product.ID,
		&product.Title,
		&product.Description,
		&product.PriceCents,
		&product.Stock,
		&product.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// ListProducts returns all products ordered by creation time
func (s *Storage) ListProducts(ctx context.Context) ([]*models.Product, error) {
	query := `
		SELECT id, title, description, price_cents, stock, created_at
		FROM products
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(
			&product.ID,
			&product.Title,
			&product.Description,
			&product.PriceCents,
			&product.Stock,
			&product.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// DeleteProduct removes product by ID
func (s *Storage) DeleteProduct(ctx context.Context, productID string) error {
	query := `DELETE FROM products WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrProductNotFound
	}

	return nil
}
