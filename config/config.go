package config

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Dashboard export formats.
const (
	DashboardNone = "none"
	DashboardSVG  = "svg"
	DashboardPNG  = "png"
)

// Config holds all application configuration loaded from environment variables.
// The zero-configuration defaults reproduce a plain run: report file only.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn warning error"`

	ReportOutputDir string `envconfig:"REPORT_OUTPUT_DIR" default:"." validate:"required"`

	DashboardFormat string        `envconfig:"DASHBOARD_FORMAT" default:"none" validate:"oneof=none svg png"`
	DashboardWidth  int           `envconfig:"DASHBOARD_WIDTH" default:"1600" validate:"gte=400,lte=8000"`
	DashboardHeight int           `envconfig:"DASHBOARD_HEIGHT" default:"1200" validate:"gte=300,lte=8000"`
	ChromeBin       string        `envconfig:"CHROME_BIN"`
	RenderTimeout   time.Duration `envconfig:"RENDER_TIMEOUT" default:"60s" validate:"gt=0"`
	MaxRetries      int           `envconfig:"MAX_RETRIES" default:"3" validate:"gte=1,lte=10"`

	MetricsCSVPath string `envconfig:"METRICS_CSV_PATH"`

	HistoryEnabled   bool   `envconfig:"HISTORY_ENABLED" default:"false"`
	PostgresHost     string `envconfig:"POSTGRES_HOST" default:"localhost" validate:"required_if=HistoryEnabled true"`
	PostgresPort     string `envconfig:"POSTGRES_PORT" default:"5432" validate:"omitempty,numeric"`
	PostgresUser     string `envconfig:"POSTGRES_USER" default:"energy"`
	PostgresPassword string `envconfig:"POSTGRES_PASSWORD" default:"energy123"`
	PostgresDB       string `envconfig:"POSTGRES_DB" default:"energy_reports"`
	PostgresSSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`
}

// Load reads the .env file and returns a populated, validated Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}
	return FromEnv()
}

// FromEnv populates a Config from the current process environment only.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// ExportsDashboard reports whether the dashboard should be written to disk.
func (c *Config) ExportsDashboard() bool {
	return c.DashboardFormat == DashboardSVG || c.DashboardFormat == DashboardPNG
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}
