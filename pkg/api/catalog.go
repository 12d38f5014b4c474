package api

// ProductPayload представляет товар каталога
type ProductPayload struct {
	ID          string `json:"id"`          // UUID товара
	Title       string `json:"title"`       // название
	Description string `json:"description"` // описание
	PriceCents  int64  `json:"price_cents"` // цена в центах, чтобы не работать с float
	Stock       int64  `json:"stock"`       // остаток на складе
}

// ProductsResponse представляет список товаров
type ProductsResponse struct {
	Products []ProductPayload `json:"products"`
}

// CreateProductRequest представляет запрос на создание товара (админка)
type CreateProductRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Stock       int64  `json:"stock"`
}
