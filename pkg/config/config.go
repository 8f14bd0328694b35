package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del tablero (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	Log       LogConfig
	Dashboard DashboardConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel de log (trace, debug, info, warn, error).
type LogConfig struct {
	Level string
}

// DashboardConfig parámetros de presentación del tablero.
type DashboardConfig struct {
	Query  string // término de búsqueda inicial
	Locale string // etiqueta BCP 47 para formatear montos, ej: es-CO
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, DASHBOARD_QUERY, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: .env o config.env; ignoramos error si no existen
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v), nil
}

// FromViper construye Config a partir de una instancia ya poblada.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario-dashboard"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Dashboard: DashboardConfig{
			Query:  getString(v, "DASHBOARD_QUERY", ""),
			Locale: getString(v, "DASHBOARD_LOCALE", "es-CO"),
		},
	}
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}
