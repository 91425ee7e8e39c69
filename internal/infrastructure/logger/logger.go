package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pixieai/pixie-ai-service/internal/config"
)

// New creates a zerolog.Logger configured for the Pixie AI service.
func New(cfg *config.Config) zerolog.Logger {
	level := parseLevel(cfg.LogLevel)

	var output io.Writer = os.Stdout
	if !strings.EqualFold(cfg.LogFormat, "json") {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(output).
		With().
		Timestamp().
		Str("service", config.ServiceName).
		Str("environment", cfg.Environment).
		Logger().
		Level(level)
}

// parseLevel maps the raw LOG_LEVEL value to a zerolog level. Casing is
// ignored and unknown values degrade to info rather than failing startup.
func parseLevel(raw string) zerolog.Level {
	if raw == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
