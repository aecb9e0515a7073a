package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.Addr())
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 2000, cfg.Engine.MaxTextLength)
	assert.True(t, cfg.Observability.MetricsEnabled)
	assert.Equal(t, slog.LevelInfo, cfg.Observability.LogLevel)
	assert.Equal(t, "*/30 * * * *", cfg.Canary.Schedule)
	assert.Equal(t, 1.0, cfg.Canary.MinAccuracy)
	assert.Empty(t, cfg.Canary.ReportDir)
	assert.Equal(t, 48, cfg.Canary.ReportRetention)
}

func TestLoad_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("SERVER_WRITE_TIMEOUT", "30s")
	t.Setenv("ENGINE_MAX_TEXT_LENGTH", "500")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("CANARY_ENABLED", "false")
	t.Setenv("CANARY_MIN_ACCURACY", "0.9")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 500, cfg.Engine.MaxTextLength)
	assert.Equal(t, slog.LevelDebug, cfg.Observability.LogLevel)
	assert.Equal(t, "text", cfg.Observability.LogFormat)
	assert.False(t, cfg.Canary.Enabled)
	assert.Equal(t, 0.9, cfg.Canary.MinAccuracy)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "eighty")
	t.Setenv("METRICS_ENABLED", "maybe")
	t.Setenv("SERVER_READ_TIMEOUT", "5 minutes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Observability.MetricsEnabled)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port", "SERVER_PORT", "70000"},
		{"rate limit", "SERVER_RATE_LIMIT_BURST", "-1"},
		{"text length", "ENGINE_MAX_TEXT_LENGTH", "0"},
		{"log format", "LOG_FORMAT", "xml"},
		{"accuracy", "CANARY_MIN_ACCURACY", "1.5"},
		{"retention", "CANARY_REPORT_RETENTION", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
