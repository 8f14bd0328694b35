package dto

import "github.com/shopspring/decimal"

// DashboardResponse vista completa del tablero.
// Summary y Categories cubren todo el inventario; Items solo lo que coincide con Query.
type DashboardResponse struct {
	Summary        DashboardSummaryDTO  `json:"summary"`
	Query          string               `json:"query"`
	Items          []ProductResponse    `json:"items"`
	LowStockAlerts []ProductResponse    `json:"low_stock_alerts"`
	Categories     []CategorySummaryDTO `json:"categories"`
}

// DashboardSummaryDTO tarjetas de métricas del tablero.
type DashboardSummaryDTO struct {
	TotalUnits    int             `json:"total_units"`
	TotalValue    decimal.Decimal `json:"total_value"`
	CategoryCount int             `json:"category_count"`
	LowStockCount int             `json:"low_stock_count"`
}

// CategorySummaryDTO resumen por categoría (orden de primera aparición).
type CategorySummaryDTO struct {
	Category      string          `json:"category"`
	ProductCount  int             `json:"product_count"`
	TotalUnits    int             `json:"total_units"`
	TotalValue    decimal.Decimal `json:"total_value"`
	LowStockCount int             `json:"low_stock_count"`
}
