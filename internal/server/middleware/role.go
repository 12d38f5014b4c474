package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ivmolchanov/goshop/internal/models"
	"github.com/ivmolchanov/goshop/internal/server/handlers"
	"github.com/ivmolchanov/goshop/pkg/api"
)

// RequireRole создает middleware проверки роли.
// Композируется ПОСЛЕ Authenticate: пользователь уже аутентифицирован,
// поэтому при нехватке прав возвращается 403, а не 401 — клиент не должен
// сбрасывать identity по этому ответу. Проверка делается тем же предикатом
// models.Role.Satisfies, что и в клиентских guard'ах.
func RequireRole(logger *slog.Logger, required models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := handlers.UserFromContext(r.Context())
			if !ok {
				// RequireRole без Authenticate — ошибка композиции роутера
				logger.Error("RequireRole called without authenticated user", "path", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "authentication required"})
				return
			}

			if !user.Role.Satisfies(required) {
				logger.Warn("insufficient role",
					"user_id", user.ID,
					"role", user.Role,
					"required", required,
					"path", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "insufficient permissions"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
