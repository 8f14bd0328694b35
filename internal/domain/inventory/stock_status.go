// Package inventory contiene las reglas puras del tablero de inventario:
// clasificación de stock, métricas agregadas y búsqueda.
package inventory

import "github.com/jhoicas/inventario-dashboard/internal/domain/entity"

// StockStatus clasifica el stock disponible frente al punto de reorden.
type StockStatus string

const (
	StockLow    StockStatus = "low"
	StockMedium StockStatus = "medium"
	StockHigh   StockStatus = "high"
)

// Label devuelve la etiqueta que muestra el tablero.
func (s StockStatus) Label() string {
	switch s {
	case StockLow:
		return "Stock Bajo"
	case StockMedium:
		return "Stock Medio"
	default:
		return "Stock Alto"
	}
}

// Classify aplica, en orden:
//  1. Stock <= MinStock   → low
//  2. Stock <= MinStock*2 → medium
//  3. resto               → high
//
// Con MinStock = 0 solo Stock = 0 es low y cualquier Stock > 0 es high.
func Classify(p entity.Product) StockStatus {
	if p.Stock <= p.MinStock {
		return StockLow
	}
	if p.Stock <= p.MinStock*2 {
		return StockMedium
	}
	return StockHigh
}

// IsLowStock equivale a Classify(p) == StockLow.
func IsLowStock(p entity.Product) bool {
	return Classify(p) == StockLow
}

// LowStock devuelve los productos con stock bajo, en el orden original.
func LowStock(products []entity.Product) []entity.Product {
	out := make([]entity.Product, 0)
	for _, p := range products {
		if IsLowStock(p) {
			out = append(out, p)
		}
	}
	return out
}
