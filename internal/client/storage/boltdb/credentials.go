package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/ivmolchanov/goshop/internal/client/storage"
)

// credentialsKey фиксированный ключ, под которым лежит текущая identity
var credentialsKey = []byte("current")

// Load retrieves the stored identity.
// Отсутствующая или битая запись дает пустую identity без ошибки:
// сломанный кеш означает "не залогинен", а не падение клиента.
func (s *Storage) Load(ctx context.Context) (storage.Identity, error) {
	var identity storage.Identity

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return nil
		}

		data := bucket.Get(credentialsKey)
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, &identity); err != nil {
			// Битая запись — считаем, что ее нет
			identity = storage.Identity{}
			return nil
		}

		return nil
	})

	if err != nil {
		return storage.Identity{}, fmt.Errorf("failed to load credentials: %w", err)
	}

	// Частично заполненная запись нарушает инвариант — сбрасываем
	if identity.Token == "" || identity.User == nil {
		return storage.Identity{}, nil
	}

	return identity, nil
}

// Save overwrites the stored identity.
// Вся identity сериализуется и пишется в одной транзакции.
func (s *Storage) Save(ctx context.Context, identity storage.Identity) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		data, err := json.Marshal(identity)
		if err != nil {
			return fmt.Errorf("failed to marshal identity: %w", err)
		}

		if err := bucket.Put(credentialsKey, data); err != nil {
			return fmt.Errorf("failed to save identity: %w", err)
		}

		return nil
	})
}

// Clear removes the stored identity (logout). Idempotent.
func (s *Storage) Clear(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return nil
		}

		if err := bucket.Delete(credentialsKey); err != nil {
			return fmt.Errorf("failed to delete identity: %w", err)
		}

		return nil
	})
}
