package inventory

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// Search filtra por subcadena en nombre o categoría, sin distinguir mayúsculas.
// Consulta vacía devuelve todo; el orden original se conserva.
func Search(products []entity.Product, query string) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	if query == "" {
		return append(out, products...)
	}
	fold := cases.Fold()
	q := fold.String(query)
	for _, p := range products {
		if strings.Contains(fold.String(p.Name), q) || strings.Contains(fold.String(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}
