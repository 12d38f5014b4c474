package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/ivmolchanov/goshop/internal/client/storage"
)

// AddItem puts an item into the cart, summing quantity
// if the product is already there
func (s *Storage) AddItem(ctx context.Context, item storage.CartItem) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCart)
		if bucket == nil {
			return fmt.Errorf("cart bucket not found")
		}

		key := []byte(item.ProductID)

		// Если товар уже в корзине, складываем количество
		if data := bucket.Get(key); data != nil {
			var existing storage.CartItem
			if err := json.Unmarshal(data, &existing); err == nil {
				item.Quantity += existing.Quantity
			}
		}

		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal cart item: %w", err)
		}

		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save cart item: %w", err)
		}

		return nil
	})
}

// ListItems returns all cart items
func (s *Storage) ListItems(ctx context.Context) ([]storage.CartItem, error) {
	var items []storage.CartItem

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCart)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var item storage.CartItem
			if err := json.Unmarshal(v, &item); err != nil {
				// Битую позицию пропускаем
				return nil
			}
			items = append(items, item)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	return items, nil
}

// ClearCart removes all items. Idempotent.
func (s *Storage) ClearCart(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketCart); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to drop cart bucket: %w", err)
		}

		if _, err := tx.CreateBucketIfNotExists(bucketCart); err != nil {
			return fmt.Errorf("failed to recreate cart bucket: %w", err)
		}

		return nil
	})
}
