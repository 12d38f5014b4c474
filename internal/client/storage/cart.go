package storage

import "context"

// CartItem представляет позицию локальной корзины
type CartItem struct {
	ProductID  string `json:"product_id"`
	Title      string `json:"title"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int64  `json:"quantity"`
}

// CartStore defines interface for the local cart cache.
// Plain persisted key-value data: no eviction, no concurrency policy,
// survives restarts, dropped by Clear.
type CartStore interface {
	// AddItem puts an item into the cart, summing quantity
	// if the product is already there
	AddItem(ctx context.Context, item CartItem) error

	// ListItems returns all cart items
	ListItems(ctx context.Context) ([]CartItem, error)

	// ClearCart removes all items. Idempotent.
	ClearCart(ctx context.Context) error
}
