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

// setupTestStorage creates an in-memory storage for testing
func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func testUser(email string, role models.Role) *models.User {
	return &models.User{
		ID:           uuid.New().String(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		Role:         role,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
}

func TestStorage_CreateUser(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	user := testUser("buyer@example.com", models.RoleUser)
	require.NoError(t, s.CreateUser(ctx, user))

	got, err := s.GetUserByEmail(ctx, "buyer@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Name, got.Name)
	assert.Equal(t, models.RoleUser, got.Role)
	assert.False(t, got.Disabled)
	assert.Nil(t, got.LastLogin)
}

func TestStorage_CreateUser_DuplicateEmail(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, testUser("dup@example.com", models.RoleUser)))

	err := s.CreateUser(ctx, testUser("dup@example.com", models.RoleUser))
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestStorage_GetUserByID(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	user := testUser("admin@example.com", models.RoleAdmin)
	require.NoError(t, s.CreateUser(ctx, user))

	got, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, got.Role)

	_, err = s.GetUserByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestStorage_ListUsers(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	require.NoError(t, s.CreateUser(ctx, testUser("a@example.com", models.RoleUser)))
	require.NoError(t, s.CreateUser(ctx, testUser("b@example.com", models.RoleAdmin)))

	users, err = s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestStorage_UpdateLastLogin(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	user := testUser("login@example.com", models.RoleUser)
	require.NoError(t, s.CreateUser(ctx, user))

	loginTime := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, s.UpdateLastLogin(ctx, user.ID, loginTime))

	got, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	assert.True(t, got.LastLogin.Equal(loginTime))

	err = s.UpdateLastLogin(ctx, uuid.New().String(), loginTime)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestStorage_SetUserDisabled(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	user := testUser("disable@example.com", models.RoleUser)
	require.NoError(t, s.CreateUser(ctx, user))

	require.NoError(t, s.SetUserDisabled(ctx, user.ID, true))

	got, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.Disabled)

	err = s.SetUserDisabled(ctx, uuid.New().String(), true)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}
