package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ivmolchanov/goshop/internal/server/handlers"
	"github.com/ivmolchanov/goshop/internal/server/storage"
	"github.com/ivmolchanov/goshop/pkg/api"
)

// Authenticate создает middleware для проверки session token.
//
// Шаги: извлечь bearer token → проверить подпись и срок → найти аккаунт
// по id из claims → положить пользователя в контекст. Все три варианта
// отказа различаются только в логах: наружу всегда уходит одинаковый 401,
// чтобы не подсказывать атакующему, на каком шаге он споткнулся.
// Удаленный или отключенный аккаунт отклоняется даже со структурно
// валидным токеном.
func Authenticate(logger *slog.Logger, jwtConfig handlers.JWTConfig, users storage.UserStorage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Извлекаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("missing Authorization header", "path", r.URL.Path)
				unauthorized(w, "authentication required")
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("invalid Authorization header format", "path", r.URL.Path)
				unauthorized(w, "authentication required")
				return
			}

			tokenString := parts[1]

			// Валидируем подпись и срок действия
			claims, err := handlers.ValidateToken(jwtConfig, tokenString)
			if err != nil {
				logger.Warn("invalid session token", "error", err)
				unauthorized(w, "invalid or expired token")
				return
			}

			// Перечитываем аккаунт из БД: токен мог пережить удаление
			// или отключение аккаунта
			user, err := users.GetUserByID(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, storage.ErrUserNotFound) {
					logger.Warn("token references unknown account", "user_id", claims.UserID)
					unauthorized(w, "invalid or expired token")
					return
				}
				logger.Error("failed to resolve account", "error", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			if user.Disabled {
				logger.Warn("token references disabled account", "user_id", user.ID)
				unauthorized(w, "invalid or expired token")
				return
			}

			logger.Debug("user authenticated", "user_id", user.ID, "role", user.Role)

			// Передаем запрос дальше с пользователем в контексте
			ctx := handlers.ContextWithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// unauthorized отправляет 401 в формате api.ErrorResponse
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: message})
}
