package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/domain"
)

// Product representa un ítem del inventario.
// MinStock es el punto de reorden; LastUpdated es una fecha de calendario (medianoche UTC).
type Product struct {
	ID          string
	Name        string
	Category    string // una sola categoría por producto
	Stock       int
	MinStock    int
	Price       decimal.Decimal // precio unitario
	LastUpdated time.Time
}

// Validate comprueba las invariantes del producto y devuelve un *domain.ValidationError
// con el primer campo inválido.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return domain.NewValidationError("id", "requerido")
	}
	if strings.TrimSpace(p.Name) == "" {
		return domain.NewValidationError("name", "requerido")
	}
	if p.Stock < 0 {
		return domain.NewValidationError("stock", "no puede ser negativo")
	}
	if p.MinStock < 0 {
		return domain.NewValidationError("min_stock", "no puede ser negativo")
	}
	if p.Price.IsNegative() {
		return domain.NewValidationError("price", "no puede ser negativo")
	}
	return nil
}

// Value devuelve stock × precio.
func (p *Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// DateOf trunca t a la fecha de calendario en UTC.
func DateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
