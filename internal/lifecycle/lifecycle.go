// Package lifecycle scopes the serving loop between the startup and
// shutdown records.
package lifecycle

import (
	"github.com/rs/zerolog"

	"github.com/pixieai/pixie-ai-service/internal/config"
)

// Run emits the startup records, invokes serve, and guarantees exactly one
// shutdown record on every exit path. A panic inside serve still produces
// the shutdown record and then continues unwinding; it is not swallowed.
func Run(log zerolog.Logger, cfg *config.Config, serve func() error) error {
	log.Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Msg("starting Pixie AI Service")
	log.Info().Msgf("environment: %s", cfg.Environment)
	log.Info().Msgf("log level: %s", cfg.LogLevel)

	defer func() {
		log.Info().Msg("shutting down Pixie AI Service")
	}()

	return serve()
}
