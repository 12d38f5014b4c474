// Package server собирает HTTP API магазина: роутер, middleware-цепочки
// и жизненный цикл http.Server.
//
// Клиентские guard'ы дают только UX: настоящая граница безопасности — это
// композиция Authenticate/RequireRole здесь, и она выполняется для каждого
// защищенного запроса независимо от того, что решил клиент.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ivmolchanov/goshop/internal/models"
	"github.com/ivmolchanov/goshop/internal/server/handlers"
	"github.com/ivmolchanov/goshop/internal/server/middleware"
	"github.com/ivmolchanov/goshop/internal/server/storage"
)

// NewRouter собирает chi-роутер со всеми маршрутами магазина.
//
// Группы маршрутов:
//   - публичные: health, metrics, регистрация, логин, чтение каталога
//   - аутентифицированные: verify
//   - админские: verify-admin, список пользователей, запись каталога
func NewRouter(
	logger *slog.Logger,
	jwtConfig handlers.JWTConfig,
	users storage.UserStorage,
	products storage.ProductStorage,
	registry *prometheus.Registry,
) http.Handler {
	authHandler := handlers.NewAuthHandler(logger, users, jwtConfig)
	usersHandler := handlers.NewUsersHandler(logger, users)
	catalogHandler := handlers.NewCatalogHandler(logger, products)

	r := chi.NewRouter()

	// Порядок важен: recovery снаружи, чтобы паника в логировании
	// и метриках тоже перехватывалась
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics(registry))

	// Публичные маршруты
	r.Get("/api/v1/health", handlers.Health)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Post("/api/v1/auth/register", authHandler.Register)
	r.Post("/api/v1/auth/login", authHandler.Login)

	r.Get("/api/v1/products", catalogHandler.List)
	r.Get("/api/v1/products/{id}", catalogHandler.Get)

	// Маршруты, требующие аутентификации
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(logger, jwtConfig, users))

		r.Get("/api/v1/auth/verify", authHandler.Verify)

		// Маршруты, требующие роли admin
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(logger, models.RoleAdmin))

			r.Get("/api/v1/auth/verify-admin", authHandler.Verify)
			r.Get("/dashboard/admin/users", usersHandler.List)

			r.Post("/api/v1/products", catalogHandler.Create)
			r.Delete("/api/v1/products/{id}", catalogHandler.Delete)
		})
	})

	return r
}
