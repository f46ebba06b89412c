package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ".", cfg.ReportOutputDir)
	assert.Equal(t, DashboardNone, cfg.DashboardFormat)
	assert.Equal(t, 1600, cfg.DashboardWidth)
	assert.Equal(t, 1200, cfg.DashboardHeight)
	assert.Equal(t, 60*time.Second, cfg.RenderTimeout)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.False(t, cfg.HistoryEnabled)
	assert.Empty(t, cfg.MetricsCSVPath)
	assert.False(t, cfg.ExportsDashboard())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REPORT_OUTPUT_DIR", "/tmp/reports")
	t.Setenv("DASHBOARD_FORMAT", "png")
	t.Setenv("RENDER_TIMEOUT", "15s")
	t.Setenv("METRICS_CSV_PATH", "/tmp/metrics.csv")
	t.Setenv("HISTORY_ENABLED", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/reports", cfg.ReportOutputDir)
	assert.True(t, cfg.ExportsDashboard())
	assert.Equal(t, 15*time.Second, cfg.RenderTimeout)
	assert.Equal(t, "/tmp/metrics.csv", cfg.MetricsCSVPath)
	assert.True(t, cfg.HistoryEnabled)
}

func TestFromEnvRejectsInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"DASHBOARD_FORMAT", "gif"},
		{"LOG_LEVEL", "loud"},
		{"MAX_RETRIES", "0"},
		{"DASHBOARD_WIDTH", "abc"},
		{"POSTGRES_SSLMODE", "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		PostgresHost:     "db",
		PostgresPort:     "5433",
		PostgresUser:     "u",
		PostgresPassword: "p",
		PostgresDB:       "reports",
		PostgresSSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=reports sslmode=disable", cfg.DSN())
}
