package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// Aggregates métricas del tablero calculadas sobre el inventario completo
// (nunca sobre la vista filtrada).
type Aggregates struct {
	TotalUnits    int
	TotalValue    decimal.Decimal
	CategoryCount int
	LowStockCount int
}

// Aggregate recalcula todas las métricas en cada llamada.
// Las categorías se comparan exactamente (sensible a mayúsculas, sin recortar espacios).
func Aggregate(products []entity.Product) Aggregates {
	agg := Aggregates{TotalValue: decimal.Zero}
	categories := make(map[string]struct{}, len(products))
	for i := range products {
		p := &products[i]
		agg.TotalUnits += p.Stock
		agg.TotalValue = agg.TotalValue.Add(p.Value())
		categories[p.Category] = struct{}{}
		if IsLowStock(*p) {
			agg.LowStockCount++
		}
	}
	agg.CategoryCount = len(categories)
	return agg
}

// CategorySummary resumen de una categoría para la pestaña de categorías.
type CategorySummary struct {
	Category string
	Products int
	Units    int
	Value    decimal.Decimal
	LowStock int
}

// SummarizeCategories agrupa por categoría en orden de primera aparición.
func SummarizeCategories(products []entity.Product) []CategorySummary {
	idx := make(map[string]int)
	out := make([]CategorySummary, 0)
	for i := range products {
		p := &products[i]
		j, ok := idx[p.Category]
		if !ok {
			j = len(out)
			idx[p.Category] = j
			out = append(out, CategorySummary{Category: p.Category, Value: decimal.Zero})
		}
		s := &out[j]
		s.Products++
		s.Units += p.Stock
		s.Value = s.Value.Add(p.Value())
		if IsLowStock(*p) {
			s.LowStock++
		}
	}
	return out
}
