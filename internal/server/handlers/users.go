package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ivmolchanov/goshop/internal/server/storage"
	"github.com/ivmolchanov/goshop/pkg/api"
)

// UsersHandler обрабатывает админские запросы к пользователям
type UsersHandler struct {
	logger *slog.Logger
	users  storage.UserStorage
}

// NewUsersHandler создает новый handler для админки пользователей
func NewUsersHandler(logger *slog.Logger, users storage.UserStorage) *UsersHandler {
	return &UsersHandler{
		logger: logger,
		users:  users,
	}
}

// List обрабатывает GET /dashboard/admin/users
// Список пользователей магазина. Маршрут закрыт композицией
// {Authenticate, RequireRole(admin)}.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.users.ListUsers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list users", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.UsersResponse{Users: make([]api.UserPayload, 0, len(users))}
	for _, user := range users {
		resp.Users = append(resp.Users, userPayload(user))
	}

	sendJSON(w, resp, http.StatusOK)
}
