package storage

import (
	"context"
	"time"

	"github.com/ivmolchanov/goshop/internal/models"
)

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage
	// Returns ErrUserAlreadyExists if email is taken
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves user by email
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// ListUsers returns all users ordered by creation time
	ListUsers(ctx context.Context) ([]*models.User, error)

	// UpdateLastLogin updates the last login timestamp
	// Returns ErrUserNotFound if user doesn't exist
	UpdateLastLogin(ctx context.Context, userID string, lastLogin time.Time) error

	// SetUserDisabled toggles the disabled flag of an account.
	// A disabled account is rejected by the auth middleware even with
	// a structurally valid token.
	SetUserDisabled(ctx context.Context, userID string, disabled bool) error
}
