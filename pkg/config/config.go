package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server        ServerConfig
	Engine        EngineConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
	Canary        CanaryConfig
}

type ServerConfig struct {
	Host               string
	Port               int
	AllowedOrigins     []string
	RateLimitPerSecond int
	RateLimitBurst     int
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ShutdownTimeout    time.Duration
}

// EngineConfig bounds the input accepted by the expense engine.
type EngineConfig struct {
	MaxTextLength int
}

type ObservabilityConfig struct {
	MetricsEnabled bool
	LogLevel       slog.Level
	LogFormat      string
}

type ProfilingConfig struct {
	Enabled bool
	Port    int
}

// CanaryConfig schedules the periodic corpus evaluation.
type CanaryConfig struct {
	Enabled         bool
	Schedule        string
	MinAccuracy     float64
	ReportDir       string // empty disables report archiving
	ReportRetention int
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first when present; real environment variables
// take precedence over it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:               getEnv("SERVER_HOST", "localhost"),
			Port:               getEnvAsInt("SERVER_PORT", 8080),
			AllowedOrigins:     getEnvAsSlice("SERVER_ALLOWED_ORIGINS", []string{"*"}),
			RateLimitPerSecond: getEnvAsInt("SERVER_RATE_LIMIT_PER_SECOND", 100),
			RateLimitBurst:     getEnvAsInt("SERVER_RATE_LIMIT_BURST", 200),
			ReadTimeout:        getEnvAsDuration("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:       getEnvAsDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout:    getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		Engine: EngineConfig{
			MaxTextLength: getEnvAsInt("ENGINE_MAX_TEXT_LENGTH", 2000),
		},
		Observability: ObservabilityConfig{
			MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),
			LogLevel:       getEnvAsLogLevel("LOG_LEVEL", slog.LevelInfo),
			LogFormat:      getEnv("LOG_FORMAT", "json"),
		},
		Profiling: ProfilingConfig{
			Enabled: getEnvAsBool("PPROF_ENABLED", false),
			Port:    getEnvAsInt("PPROF_PORT", 6060),
		},
		Canary: CanaryConfig{
			Enabled:         getEnvAsBool("CANARY_ENABLED", true),
			Schedule:        getEnv("CANARY_SCHEDULE", "*/30 * * * *"),
			MinAccuracy:     getEnvAsFloat("CANARY_MIN_ACCURACY", 1.0),
			ReportDir:       getEnv("CANARY_REPORT_DIR", ""),
			ReportRetention: getEnvAsInt("CANARY_REPORT_RETENTION", 48),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT out of range: %d", c.Server.Port)
	}
	if c.Server.RateLimitPerSecond < 0 || c.Server.RateLimitBurst < 0 {
		return errors.New("rate limit values must not be negative")
	}
	if c.Engine.MaxTextLength <= 0 {
		return fmt.Errorf("ENGINE_MAX_TEXT_LENGTH must be positive, got %d", c.Engine.MaxTextLength)
	}
	if c.Observability.LogFormat != "json" && c.Observability.LogFormat != "text" {
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Observability.LogFormat)
	}
	if c.Canary.MinAccuracy < 0 || c.Canary.MinAccuracy > 1 {
		return fmt.Errorf("CANARY_MIN_ACCURACY must be within [0, 1], got %v", c.Canary.MinAccuracy)
	}
	if c.Canary.ReportRetention < 1 {
		return fmt.Errorf("CANARY_REPORT_RETENTION must be at least 1, got %d", c.Canary.ReportRetention)
	}
	return nil
}

// Addr returns the listen address
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsSlice splits a comma-separated value, dropping blanks.
func getEnvAsSlice(key string, defaultValue []string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func getEnvAsLogLevel(key string, defaultValue slog.Level) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(os.Getenv(key))); err == nil {
		return level
	}
	return defaultValue
}
