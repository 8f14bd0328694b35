package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para agregar un producto.
// ID es opcional: si viene vacío se genera uno nuevo.
type CreateProductRequest struct {
	ID       string          `json:"id,omitempty"`
	Name     string          `json:"name" validate:"required"`
	Category string          `json:"category"`
	Stock    int             `json:"stock" validate:"min=0"`
	MinStock int             `json:"min_stock" validate:"min=0"`
	Price    decimal.Decimal `json:"price"`
}

// UpdateProductRequest entrada para editar un producto.
// Solo stock, precio y categoría son editables; ID y nombre no cambian.
type UpdateProductRequest struct {
	Stock    *int             `json:"stock" validate:"omitempty,min=0"`
	Price    *decimal.Decimal `json:"price"`
	Category *string          `json:"category"`
}

// ProductResponse salida de un producto con su clasificación de stock.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`       // low, medium, high
	StatusLabel string          `json:"status_label"` // ej: "Stock Bajo"
	LowStock    bool            `json:"low_stock"`
	LastUpdated string          `json:"last_updated"` // YYYY-MM-DD
}
