package handlers

import (
	"net/http"
	"time"
)

// HealthResponse представляет ответ health check эндпоинта
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Health обрабатывает GET /api/v1/health
// Эндпоинт всегда публичный, аутентификация не требуется
func Health(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	}, http.StatusOK)
}
