package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo de referencia del tablero
// ──────────────────────────────────────────────────────────────────────────────

func referenceProducts() []entity.Product {
	return []entity.Product{
		{ID: "1", Name: "Laptop Dell XPS 13", Category: "Electrónicos", Stock: 15, MinStock: 5, Price: decimal.RequireFromString("1299.99")},
		{ID: "2", Name: "Silla de Oficina Ergonómica", Category: "Muebles", Stock: 3, MinStock: 10, Price: decimal.RequireFromString("299.99")},
		{ID: "3", Name: `Monitor 4K 27"`, Category: "Electrónicos", Stock: 8, MinStock: 3, Price: decimal.RequireFromString("449.99")},
		{ID: "4", Name: "Teclado Mecánico RGB", Category: "Accesorios", Stock: 25, MinStock: 15, Price: decimal.RequireFromString("129.99")},
	}
}

func ids(list []entity.Product) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

func TestClassify_CatalogoDeReferencia(t *testing.T) {
	want := []inventory.StockStatus{inventory.StockHigh, inventory.StockLow, inventory.StockHigh, inventory.StockMedium}
	for i, p := range referenceProducts() {
		assert.Equal(t, want[i], inventory.Classify(p), "producto %s", p.ID)
	}
}

func TestClassify_Limites(t *testing.T) {
	cases := []struct {
		stock, min int
		want       inventory.StockStatus
	}{
		{0, 0, inventory.StockLow},
		{1, 0, inventory.StockHigh}, // con min=0 no existe franja media
		{5, 5, inventory.StockLow},
		{6, 5, inventory.StockMedium},
		{10, 5, inventory.StockMedium},
		{11, 5, inventory.StockHigh},
		{0, 3, inventory.StockLow},
	}
	for _, c := range cases {
		p := entity.Product{Stock: c.stock, MinStock: c.min}
		assert.Equal(t, c.want, inventory.Classify(p), "stock=%d min=%d", c.stock, c.min)
	}
}

// TestIsLowStock_EquivaleAClassify recorre una grilla de pares válidos.
func TestIsLowStock_EquivaleAClassify(t *testing.T) {
	for min := 0; min <= 12; min++ {
		for stock := 0; stock <= 30; stock++ {
			p := entity.Product{Stock: stock, MinStock: min}
			status := inventory.Classify(p)
			assert.Contains(t, []inventory.StockStatus{inventory.StockLow, inventory.StockMedium, inventory.StockHigh}, status)
			assert.Equal(t, status == inventory.StockLow, inventory.IsLowStock(p))
			if stock <= min {
				assert.Equal(t, inventory.StockLow, status)
			}
		}
	}
}

func TestStockStatus_Label(t *testing.T) {
	assert.Equal(t, "Stock Bajo", inventory.StockLow.Label())
	assert.Equal(t, "Stock Medio", inventory.StockMedium.Label())
	assert.Equal(t, "Stock Alto", inventory.StockHigh.Label())
}

func TestAggregate_CatalogoDeReferencia(t *testing.T) {
	agg := inventory.Aggregate(referenceProducts())

	assert.Equal(t, 51, agg.TotalUnits)
	assert.True(t, agg.TotalValue.Equal(decimal.RequireFromString("27249.49")),
		"valor total exacto, obtenido %s", agg.TotalValue)
	assert.Equal(t, 3, agg.CategoryCount)
	assert.Equal(t, 1, agg.LowStockCount)
}

func TestAggregate_ColeccionVacia(t *testing.T) {
	agg := inventory.Aggregate(nil)

	assert.Equal(t, 0, agg.TotalUnits)
	assert.True(t, agg.TotalValue.IsZero())
	assert.Equal(t, 0, agg.CategoryCount)
	assert.Equal(t, 0, agg.LowStockCount)
}

func TestAggregate_InvarianteAlOrden(t *testing.T) {
	products := referenceProducts()
	reversed := make([]entity.Product, len(products))
	for i, p := range products {
		reversed[len(products)-1-i] = p
	}

	a, b := inventory.Aggregate(products), inventory.Aggregate(reversed)
	assert.Equal(t, a.TotalUnits, b.TotalUnits)
	assert.True(t, a.TotalValue.Equal(b.TotalValue))
	assert.Equal(t, a.CategoryCount, b.CategoryCount)
	assert.Equal(t, a.LowStockCount, b.LowStockCount)
}

func TestAggregate_CategoriasSensiblesAMayusculas(t *testing.T) {
	products := []entity.Product{
		{ID: "a", Name: "A", Category: "Muebles"},
		{ID: "b", Name: "B", Category: "muebles"},
		{ID: "c", Name: "C", Category: "Muebles "},
		{ID: "d", Name: "D", Category: "Muebles"},
	}
	assert.Equal(t, 3, inventory.Aggregate(products).CategoryCount)
}

// Muchas sumas de 0.1 deben dar exacto con decimal.
func TestAggregate_SinErrorDeRedondeo(t *testing.T) {
	products := make([]entity.Product, 0, 1000)
	for i := 0; i < 1000; i++ {
		products = append(products, entity.Product{ID: "x", Name: "x", Stock: 1, MinStock: 0, Price: decimal.RequireFromString("0.10")})
	}
	assert.Equal(t, "100", inventory.Aggregate(products).TotalValue.String())
}

func TestSearch_ConsultaVaciaDevuelveTodoEnOrden(t *testing.T) {
	got := inventory.Search(referenceProducts(), "")
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(got))
}

func TestSearch_SinDistinguirMayusculas(t *testing.T) {
	products := referenceProducts()
	upper := inventory.Search(products, "LAPTOP")
	lower := inventory.Search(products, "laptop")

	assert.Equal(t, ids(lower), ids(upper))
	assert.Equal(t, []string{"1"}, ids(upper))
}

func TestSearch_PorCategoriaConAcentos(t *testing.T) {
	products := referenceProducts()

	assert.Equal(t, []string{"1", "3"}, ids(inventory.Search(products, "electrón")))
	assert.Equal(t, []string{"1", "3"}, ids(inventory.Search(products, "ELECTRÓN")))
}

func TestSearch_PorNombreOCategoria(t *testing.T) {
	products := referenceProducts()

	assert.Equal(t, []string{"2"}, ids(inventory.Search(products, "mueb")))
	assert.Equal(t, []string{"2"}, ids(inventory.Search(products, "ERGONÓMICA")))
	assert.Equal(t, []string{"4"}, ids(inventory.Search(products, "rgb")))
}

// El plegado Unicode completo hace que ß equivalga a "ss".
func TestSearch_PlegadoUnicodeCompleto(t *testing.T) {
	products := []entity.Product{
		{ID: "a", Name: "Mapa Hauptstraße", Category: "Papelería"},
		{ID: "b", Name: "Lápiz", Category: "Papelería"},
	}
	assert.Equal(t, []string{"a"}, ids(inventory.Search(products, "STRASSE")))
	assert.Equal(t, []string{"a"}, ids(inventory.Search(products, "straße")))
}

func TestSearch_SinCoincidencias(t *testing.T) {
	got := inventory.Search(referenceProducts(), "impresora")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLowStock_ConservaOrden(t *testing.T) {
	products := referenceProducts()
	products[3].Stock = 10

	assert.Equal(t, []string{"2", "4"}, ids(inventory.LowStock(products)))
}

func TestSummarizeCategories(t *testing.T) {
	got := inventory.SummarizeCategories(referenceProducts())
	require.Len(t, got, 3)

	assert.Equal(t, "Electrónicos", got[0].Category)
	assert.Equal(t, 2, got[0].Products)
	assert.Equal(t, 23, got[0].Units)
	assert.True(t, got[0].Value.Equal(decimal.RequireFromString("23099.77")))
	assert.Equal(t, 0, got[0].LowStock)

	assert.Equal(t, "Muebles", got[1].Category)
	assert.Equal(t, 1, got[1].LowStock)
	assert.Equal(t, "Accesorios", got[2].Category)
}
