// Package cli presenta el tablero de inventario en texto plano.
package cli

import (
	"fmt"
	"io"
	"math/big"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
)

// Renderer escribe la vista del tablero con números formateados según el locale.
type Renderer struct {
	p   *message.Printer
	sep string // separador decimal del locale
}

// NewRenderer construye un Renderer; un locale inválido cae a español.
func NewRenderer(locale string) *Renderer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	p := message.NewPrinter(tag)
	// "0<sep>5": el separador es lo que queda entre el cero y el cinco.
	half := p.Sprint(number.Decimal(0.5, number.Scale(1)))
	sep := strings.TrimSuffix(strings.TrimPrefix(half, "0"), "5")
	if sep == "" {
		sep = "."
	}
	return &Renderer{p: p, sep: sep}
}

// Money formatea un monto con dos decimales sin pasar por float64:
// la parte entera se agrupa con el Printer y los centavos salen del decimal exacto.
func (r *Renderer) Money(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	fixed := d.StringFixed(2)
	dot := strings.IndexByte(fixed, '.')
	whole, cents := fixed[:dot], fixed[dot+1:]

	n, ok := new(big.Int).SetString(whole, 10)
	if !ok || !n.IsInt64() {
		return sign + whole + r.sep + cents
	}
	return sign + r.p.Sprint(number.Decimal(n.Int64())) + r.sep + cents
}

// Render escribe métricas, productos filtrados, alertas y categorías.
func (r *Renderer) Render(w io.Writer, d dto.DashboardResponse) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "Sistema de Inventario")
	fmt.Fprintf(tw, "Total Productos\t%s\n", r.p.Sprint(d.Summary.TotalUnits))
	fmt.Fprintf(tw, "Valor Total\t$%s\n", r.Money(d.Summary.TotalValue))
	fmt.Fprintf(tw, "Categorías\t%d\n", d.Summary.CategoryCount)
	fmt.Fprintf(tw, "Stock Bajo\t%d\n", d.Summary.LowStockCount)
	fmt.Fprintln(tw)

	if d.Query != "" {
		fmt.Fprintf(tw, "Búsqueda: %q\n", d.Query)
	}
	if len(d.Items) == 0 {
		fmt.Fprintln(tw, "No se encontraron productos")
	} else {
		fmt.Fprintln(tw, "Producto\tCategoría\tStock\tMín.\tPrecio\tEstado\tActualizado")
		for _, it := range d.Items {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t$%s\t%s\t%s\n",
				it.Name, it.Category, it.Stock, it.MinStock, r.Money(it.Price), it.StatusLabel, it.LastUpdated)
		}
	}

	if len(d.LowStockAlerts) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Requieren atención")
		for _, it := range d.LowStockAlerts {
			fmt.Fprintf(tw, "%s\t%d/%d\n", it.Name, it.Stock, it.MinStock)
		}
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "Categoría\tProductos\tUnidades\tValor")
	for _, c := range d.Categories {
		fmt.Fprintf(tw, "%s\t%d\t%d\t$%s\n", c.Category, c.ProductCount, c.TotalUnits, r.Money(c.TotalValue))
	}
	return tw.Flush()
}
