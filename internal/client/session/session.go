// Package session держит текущую identity клиента в памяти и зеркалит
// ее в долговременный CredentialStore. Session — живое состояние,
// store — его durable-копия; меняются они всегда вместе.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/ivmolchanov/goshop/internal/client/storage"
)

// Session хранит текущую identity процесса.
// Создается один раз при старте клиента и передается всем потребителям
// явно, без глобального состояния.
type Session struct {
	mu       sync.RWMutex
	store    storage.CredentialStore
	identity storage.Identity
}

// New создает Session и синхронно подтягивает identity из хранилища,
// чтобы первый же потребитель видел актуальное состояние
func New(ctx context.Context, store storage.CredentialStore) (*Session, error) {
	identity, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stored identity: %w", err)
	}

	return &Session{
		store:    store,
		identity: identity,
	}, nil
}

// Identity возвращает снапшот текущей identity
func (s *Session) Identity() storage.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// Token возвращает текущий токен ("" если не залогинен).
// Реализует api.TokenSource: каждый исходящий запрос читает токен
// в момент вызова, а не в момент создания клиента.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity.Token
}

// Set заменяет identity целиком и записывает ее в хранилище.
// Частичное состояние (токен без пользователя или наоборот) нормализуется
// до пустого: инвариант Token=="" ⇔ User==nil не нарушается никогда.
// Память обновляется только после успешной записи в store.
func (s *Session) Set(ctx context.Context, identity storage.Identity) error {
	if identity.Token == "" || identity.User == nil {
		identity = storage.Identity{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if identity.IsZero() {
		if err := s.store.Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear stored identity: %w", err)
		}
	} else {
		if err := s.store.Save(ctx, identity); err != nil {
			return fmt.Errorf("failed to save identity: %w", err)
		}
	}

	s.identity = identity
	return nil
}

// Clear сбрасывает identity (logout): чистит и хранилище, и память
func (s *Session) Clear(ctx context.Context) error {
	return s.Set(ctx, storage.Identity{})
}
