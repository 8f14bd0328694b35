package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// DemoCatalog devuelve el catálogo de demostración con el que arranca el tablero.
func DemoCatalog() []entity.Product {
	day := func(d int) time.Time { return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC) }
	return []entity.Product{
		{ID: "1", Name: "Laptop Dell XPS 13", Category: "Electrónicos", Stock: 15, MinStock: 5, Price: decimal.RequireFromString("1299.99"), LastUpdated: day(15)},
		{ID: "2", Name: "Silla de Oficina Ergonómica", Category: "Muebles", Stock: 3, MinStock: 10, Price: decimal.RequireFromString("299.99"), LastUpdated: day(14)},
		{ID: "3", Name: `Monitor 4K 27"`, Category: "Electrónicos", Stock: 8, MinStock: 3, Price: decimal.RequireFromString("449.99"), LastUpdated: day(13)},
		{ID: "4", Name: "Teclado Mecánico RGB", Category: "Accesorios", Stock: 25, MinStock: 15, Price: decimal.RequireFromString("129.99"), LastUpdated: day(12)},
	}
}
