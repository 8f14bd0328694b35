package inventory

import (
	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
)

const dateLayout = "2006-01-02"

// Dashboard calcula la vista del tablero a partir del estado actual.
// Las métricas y categorías siempre cubren el inventario completo, independientemente de la búsqueda.
func (e *Engine) Dashboard() dto.DashboardResponse {
	agg := domaininv.Aggregate(e.products)
	return dto.DashboardResponse{
		Summary: dto.DashboardSummaryDTO{
			TotalUnits:    agg.TotalUnits,
			TotalValue:    agg.TotalValue,
			CategoryCount: agg.CategoryCount,
			LowStockCount: agg.LowStockCount,
		},
		Query:          e.query,
		Items:          toProductResponses(domaininv.Search(e.products, e.query)),
		LowStockAlerts: toProductResponses(domaininv.LowStock(e.products)),
		Categories:     toCategoryDTOs(domaininv.SummarizeCategories(e.products)),
	}
}

func toProductResponse(p entity.Product) *dto.ProductResponse {
	status := domaininv.Classify(p)
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		Price:       p.Price,
		Status:      string(status),
		StatusLabel: status.Label(),
		LowStock:    status == domaininv.StockLow,
		LastUpdated: p.LastUpdated.Format(dateLayout),
	}
}

func toProductResponses(list []entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}

func toCategoryDTOs(list []domaininv.CategorySummary) []dto.CategorySummaryDTO {
	out := make([]dto.CategorySummaryDTO, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategorySummaryDTO{
			Category:      c.Category,
			ProductCount:  c.Products,
			TotalUnits:    c.Units,
			TotalValue:    c.Value,
			LowStockCount: c.LowStock,
		})
	}
	return out
}
