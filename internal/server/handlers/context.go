package handlers

import (
	"context"

	"github.com/ivmolchanov/goshop/internal/models"
)

// contextKey приватный тип для ключей контекста,
// чтобы не конфликтовать с другими пакетами
type contextKey string

const userContextKey contextKey = "auth_user"

// ContextWithUser кладет аутентифицированного пользователя в контекст запроса
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext достает аутентифицированного пользователя из контекста.
// Возвращает false, если запрос не проходил через auth middleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}
