package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ivmolchanov/goshop/internal/models"
	"github.com/ivmolchanov/goshop/internal/server/storage"
	"github.com/ivmolchanov/goshop/pkg/api"
)

// CatalogHandler обрабатывает запросы каталога товаров.
// Чтение публичное, создание и удаление — только для админов
// (закрывается на уровне роутера).
type CatalogHandler struct {
	logger   *slog.Logger
	products storage.ProductStorage
}

// NewCatalogHandler создает новый handler каталога
func NewCatalogHandler(logger *slog.Logger, products storage.ProductStorage) *CatalogHandler {
	return &CatalogHandler{
		logger:   logger,
		products: products,
	}
}

// List обрабатывает GET /api/v1/products
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.products.ListProducts(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list products", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.ProductsResponse{Products: make([]api.ProductPayload, 0, len(products))}
	for _, product := range products {
		resp.Products = append(resp.Products, productPayload(product))
	}

	sendJSON(w, resp, http.StatusOK)
}

// Get обрабатывает GET /api/v1/products/{id}
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID := chi.URLParam(r, "id")
	if productID == "" {
		sendError(w, "product id is required", http.StatusBadRequest)
		return
	}

	product, err := h.products.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			sendError(w, "product not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get product", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(w, productPayload(product), http.StatusOK)
}

// Create обрабатывает POST /api/v1/products (админка)
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode create product request", slog.Any("error", err))
		sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Title == "" {
		sendError(w, "title is required", http.StatusBadRequest)
		return
	}
	if req.PriceCents < 0 || req.Stock < 0 {
		sendError(w, "price and stock must not be negative", http.StatusBadRequest)
		return
	}

	product := &models.Product{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Stock:       req.Stock,
		CreatedAt:   time.Now(),
	}

	if err := h.products.CreateProduct(ctx, product); err != nil {
		h.logger.ErrorContext(ctx, "failed to create product", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID),
		slog.String("title", product.Title))

	sendJSON(w, productPayload(product), http.StatusCreated)
}

// Delete обрабатывает DELETE /api/v1/products/{id} (админка)
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID := chi.URLParam(r, "id")
	if productID == "" {
		sendError(w, "product id is required", http.StatusBadRequest)
		return
	}

	if err := h.products.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			sendError(w, "product not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete product", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "product deleted", slog.String("product_id", productID))

	w.WriteHeader(http.StatusNoContent)
}
