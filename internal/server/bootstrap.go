package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ivmolchanov/goshop/internal/models"
	"github.com/ivmolchanov/goshop/internal/server/storage"
)

// EnsureAdmin создает bootstrap-админа, если аккаунт с таким email
// еще не существует. Вызывается один раз при старте сервера.
// Пустые email/password означают, что bootstrap не настроен.
func EnsureAdmin(ctx context.Context, logger *slog.Logger, users storage.UserStorage, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	_, err := users.GetUserByEmail(ctx, email)
	if err == nil {
		// Аккаунт уже есть, ничего не делаем
		return nil
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return fmt.Errorf("failed to check admin account: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		ID:           uuid.New().String(),
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(passwordHash),
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now(),
	}

	if err := users.CreateUser(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info("bootstrap admin created", "email", email, "user_id", admin.ID)
	return nil
}
