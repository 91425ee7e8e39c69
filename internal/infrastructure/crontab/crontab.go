package crontab

import (
	"context"
	"fmt"

	"github.com/mileusna/crontab"
	"github.com/rs/zerolog"

	"github.com/pixieai/pixie-ai-service/internal/config"
	"github.com/pixieai/pixie-ai-service/internal/domain/health"
	"github.com/pixieai/pixie-ai-service/internal/infrastructure/metrics"
)

const (
	// DefaultSweepInterval is used when the configured interval is invalid.
	DefaultSweepInterval = 5 // in minutes
)

// Crontab periodically sweeps the dependency probes, feeding the
// reachability gauges and transition logs.
type Crontab struct {
	ctab          *crontab.Crontab
	healthService *health.Service
	cfg           *config.Config
	log           zerolog.Logger
}

func New(healthService *health.Service, cfg *config.Config, log zerolog.Logger) *Crontab {
	return &Crontab{
		ctab:          crontab.New(),
		healthService: healthService,
		cfg:           cfg,
		log:           log,
	}
}

// Run executes one sweep immediately, schedules the periodic job, and
// blocks until the context is cancelled.
func (c *Crontab) Run(ctx context.Context) error {
	// execute once on server start
	c.sweep(ctx)

	if c.cfg.MonitorEnabled && c.healthService.ProbeCount() > 0 {
		interval := c.cfg.MonitorIntervalMinutes
		if interval <= 0 {
			interval = DefaultSweepInterval
		}

		cronExpr := fmt.Sprintf("*/%d * * * *", interval)
		if err := c.ctab.AddJob(cronExpr, func() {
			sweepCtx, cancel := context.WithTimeout(context.Background(), c.cfg.ProbeTimeout)
			defer cancel()
			c.sweep(sweepCtx)
		}); err != nil {
			return fmt.Errorf("add dependency sweep job: %w", err)
		}
		c.log.Info().Msgf("dependency sweep scheduled: every %d minute(s)", interval)
	}

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

func (c *Crontab) sweep(ctx context.Context) {
	for _, result := range c.healthService.Check(ctx) {
		metrics.RecordDependencyCheck(result.Name, result.Healthy, result.Latency.Seconds())
		if result.Healthy {
			c.log.Debug().
				Str("dependency", result.Name).
				Dur("latency", result.Latency).
				Msg("dependency reachable")
		} else {
			c.log.Warn().
				Str("dependency", result.Name).
				Err(result.Err).
				Msg("dependency unreachable")
		}
	}
}
