package models

import "time"

// Product представляет товар каталога
type Product struct {
	ID          string    `json:"id"`          // UUID товара
	Title       string    `json:"title"`       // название
	Description string    `json:"description"` // описание
	PriceCents  int64     `json:"price_cents"` // цена в центах
	Stock       int64     `json:"stock"`       // остаток на складе
	CreatedAt   time.Time `json:"created_at"`  // время создания
}
