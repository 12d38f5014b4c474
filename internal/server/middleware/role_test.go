package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ivmolchanov/goshop/internal/models"
	"github.com/ivmolchanov/goshop/internal/server/handlers"
)

func TestRequireRole_AdminAllowed(t *testing.T) {
	logger := setupTestLogger()
	wrapped := RequireRole(logger, models.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard/admin/users", nil)
	req = req.WithContext(handlers.ContextWithUser(req.Context(), testAccount(models.RoleAdmin)))

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_UserForbidden(t *testing.T) {
	logger := setupTestLogger()
	wrapped := RequireRole(logger, models.RoleAdmin)(failHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/dashboard/admin/users", nil)
	req = req.WithContext(handlers.ContextWithUser(req.Context(), testAccount(models.RoleUser)))

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	// 403, не 401: пользователь аутентифицирован, но не авторизован
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient permissions")
}

func TestRequireRole_AdminSatisfiesUserRoute(t *testing.T) {
	logger := setupTestLogger()
	wrapped := RequireRole(logger, models.RoleUser)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req = req.WithContext(handlers.ContextWithUser(req.Context(), testAccount(models.RoleAdmin)))

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_NoUserInContext(t *testing.T) {
	logger := setupTestLogger()
	wrapped := RequireRole(logger, models.RoleAdmin)(failHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/dashboard/admin/users", nil)
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
