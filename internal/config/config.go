package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// ServiceName identifies the service in logs, telemetry, and the root
// status endpoint. The value is part of the public contract and is not
// configurable.
const ServiceName = "pixie-ai"

// Version is the service version reported by the health endpoint. It can
// be overridden at link time via -ldflags "-X .../internal/config.Version=".
var Version = "0.1.0"

// Config holds the environment driven configuration for the Pixie AI service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"console"`

	// LLM provider credentials. A client is constructed only for providers
	// whose key is present; no completion call is issued in current scope.
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`

	// Qdrant vector store.
	QdrantHost   string `env:"QDRANT_HOST" envDefault:"localhost"`
	QdrantPort   int    `env:"QDRANT_PORT" envDefault:"6333"`
	QdrantAPIKey string `env:"QDRANT_API_KEY"`

	// PostgreSQL, read-only access. Empty disables the database handle.
	DatabaseURL    string        `env:"DATABASE_URL"`
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"15"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`

	Port            int           `env:"PORT" envDefault:"8000"`
	AllowedOrigins  string        `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	EnableTracing bool   `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint  string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	MonitorEnabled         bool          `env:"DEPENDENCY_MONITOR_ENABLED" envDefault:"true"`
	MonitorIntervalMinutes int           `env:"DEPENDENCY_MONITOR_INTERVAL_MINUTES" envDefault:"5"`
	ProbeTimeout           time.Duration `env:"DEPENDENCY_PROBE_TIMEOUT" envDefault:"5s"`

	// InternalAPIKey is the shared secret for calls from the main backend.
	// Reserved: no handler checks it yet.
	InternalAPIKey string `env:"INTERNAL_API_KEY"`
}

// Load parses environment variables into Config.
//
// Configuration Loading Order (highest to lowest priority):
// 1. Environment variables
// 2. .env file (if present, loaded before this runs)
// 3. Default values from struct tags
//
// A value that cannot be coerced to its field type fails the whole load;
// nothing falls back to a default silently.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}

// IsProduction reports whether the configured environment is production.
// Comparison is case-insensitive and does not trim whitespace.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// AllowedOriginsList splits the raw comma-separated origin list, trimming
// surrounding whitespace from each entry. Order is preserved and
// duplicates are kept.
func (c *Config) AllowedOriginsList() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, origin := range parts {
		origins = append(origins, strings.TrimSpace(origin))
	}
	return origins
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// QdrantBaseURL builds the HTTP base URL for the configured Qdrant node.
func (c *Config) QdrantBaseURL() string {
	scheme := "http"
	if c.QdrantPort == 443 {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, c.QdrantHost, c.QdrantPort)
}
