package crontab

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pixieai/pixie-ai-service/internal/config"
	"github.com/pixieai/pixie-ai-service/internal/domain/health"
)

func TestSweepLogsUnreachableDependency(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	probes := []health.Probe{
		health.NewProbe("redis", func(ctx context.Context) error { return nil }),
		health.NewProbe("postgres", func(ctx context.Context) error {
			return errors.New("dial tcp: connection refused")
		}),
	}
	healthService := health.NewService(probes, time.Second, zerolog.Nop())

	cfg := &config.Config{ProbeTimeout: time.Second}
	monitor := New(healthService, cfg, log)
	monitor.sweep(context.Background())

	logged := buf.String()
	if !strings.Contains(logged, "dependency unreachable") {
		t.Errorf("expected unreachable warning, got %s", logged)
	}
	if !strings.Contains(logged, `"dependency":"postgres"`) {
		t.Errorf("expected failing dependency name, got %s", logged)
	}
	if strings.Contains(logged, `"dependency":"redis"`) && !strings.Contains(logged, "dependency reachable") {
		t.Errorf("healthy dependency should not be reported unreachable: %s", logged)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	healthService := health.NewService(nil, time.Second, zerolog.Nop())
	cfg := &config.Config{
		MonitorEnabled:         true,
		MonitorIntervalMinutes: 5,
		ProbeTimeout:           time.Second,
	}
	monitor := New(healthService, cfg, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- monitor.Run(ctx)
	}()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected nil error on cancellation, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestRunSkipsScheduleWithoutProbes(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	healthService := health.NewService(nil, time.Second, zerolog.Nop())
	cfg := &config.Config{
		MonitorEnabled:         true,
		MonitorIntervalMinutes: 5,
		ProbeTimeout:           time.Second,
	}
	monitor := New(healthService, cfg, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := monitor.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if strings.Contains(buf.String(), "dependency sweep scheduled") {
		t.Errorf("expected no schedule without probes, got %s", buf.String())
	}
}
