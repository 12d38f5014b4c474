package storage

import (
	"context"

	"github.com/ivmolchanov/goshop/pkg/api"
)

// Identity представляет пару {пользователь, токен}, которую клиент хранит
// между запусками.
//
// Инвариант: Token == "" ⇔ User == nil. Частично заполненного состояния
// не бывает: Session нормализует его до пустого при записи.
type Identity struct {
	User  *api.UserPayload `json:"user"`
	Token string           `json:"token"`
}

// IsZero сообщает, что identity пустая (пользователь не залогинен)
func (i Identity) IsZero() bool {
	return i.Token == "" && i.User == nil
}

// CredentialStore defines interface for storing the client identity
// between launches.
type CredentialStore interface {
	// Load returns the stored identity.
	// A missing or corrupt entry yields the empty Identity, not an error:
	// a broken cache must degrade to "logged out", never crash the client.
	Load(ctx context.Context) (Identity, error)

	// Save overwrites the stored identity atomically
	Save(ctx context.Context, identity Identity) error

	// Clear removes the stored identity (logout). Idempotent.
	Clear(ctx context.Context) error
}
