package main

import (
	"os"

	"github.com/jhoicas/inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/interfaces/cli"
	"github.com/jhoicas/inventario-dashboard/pkg/config"
	"github.com/jhoicas/inventario-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:    cfg.App.Env,
		Level:  cfg.Log.Level,
		Output: os.Stderr,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando tablero")

	engine, err := inventory.NewEngine(
		inventory.WithLogger(log),
		inventory.WithProducts(inventory.DemoCatalog()),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo inicial")
	}
	engine.SetQuery(cfg.Dashboard.Query)

	view := engine.Dashboard()
	log.Info().
		Int("total_units", view.Summary.TotalUnits).
		Str("total_value", view.Summary.TotalValue.StringFixed(2)).
		Int("low_stock", view.Summary.LowStockCount).
		Int("matches", len(view.Items)).
		Msg("tablero calculado")

	if err := cli.NewRenderer(cfg.Dashboard.Locale).Render(os.Stdout, view); err != nil {
		log.Fatal().Err(err).Msg("render")
	}
}
