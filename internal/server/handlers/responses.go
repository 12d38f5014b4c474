package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ivmolchanov/goshop/internal/models"
	"github.com/ivmolchanov/goshop/pkg/api"
)

// sendJSON сериализует ответ и выставляет статус
func sendJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// sendError отправляет ошибку в едином формате api.ErrorResponse
func sendError(w http.ResponseWriter, message string, status int) {
	sendJSON(w, api.ErrorResponse{Error: message}, status)
}

// userPayload преобразует модель пользователя в публичный payload.
// Хеш пароля никогда не покидает сервер.
func userPayload(user *models.User) api.UserPayload {
	return api.UserPayload{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}

// productPayload преобразует модель товара в payload
func productPayload(product *models.Product) api.ProductPayload {
	return api.ProductPayload{
		ID:          product.ID,
		Title:       product.Title,
		Description: product.Description,
		PriceCents:  product.PriceCents,
		Stock:       product.Stock,
	}
}
