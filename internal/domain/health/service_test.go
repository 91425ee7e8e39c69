package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestCheckAllHealthy(t *testing.T) {
	probes := []Probe{
		NewProbe("redis", func(ctx context.Context) error { return nil }),
		NewProbe("qdrant", func(ctx context.Context) error { return nil }),
	}
	service := NewService(probes, time.Second, zerolog.Nop())

	results := service.Check(context.Background())
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Name != "redis" || results[1].Name != "qdrant" {
		t.Errorf("expected registration order preserved, got %v", results)
	}
	for _, result := range results {
		if !result.Healthy {
			t.Errorf("expected %s healthy, got error %v", result.Name, result.Err)
		}
	}
}

func TestCheckReportsFailure(t *testing.T) {
	wantErr := errors.New("connection refused")
	probes := []Probe{
		NewProbe("redis", func(ctx context.Context) error { return nil }),
		NewProbe("postgres", func(ctx context.Context) error { return wantErr }),
	}
	service := NewService(probes, time.Second, zerolog.Nop())

	results := service.Check(context.Background())
	if results[0].Healthy != true {
		t.Error("expected redis healthy")
	}
	if results[1].Healthy {
		t.Error("expected postgres unhealthy")
	}
	if !errors.Is(results[1].Err, wantErr) {
		t.Errorf("expected probe error to be preserved, got %v", results[1].Err)
	}
}

func TestCheckHonorsTimeout(t *testing.T) {
	probes := []Probe{
		NewProbe("slow", func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(5 * time.Second):
				return nil
			}
		}),
	}
	service := NewService(probes, 20*time.Millisecond, zerolog.Nop())

	start := time.Now()
	results := service.Check(context.Background())
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("expected sweep to respect the timeout, took %s", elapsed)
	}
	if results[0].Healthy {
		t.Error("expected timed-out probe to report unhealthy")
	}
}

func TestCheckRunsProbesConcurrently(t *testing.T) {
	block := make(chan struct{})
	probes := []Probe{
		NewProbe("a", func(ctx context.Context) error {
			<-block
			return nil
		}),
		NewProbe("b", func(ctx context.Context) error {
			close(block)
			return nil
		}),
	}
	service := NewService(probes, time.Second, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		service.Check(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("probes did not run concurrently")
	}
}

func TestCheckNoProbes(t *testing.T) {
	service := NewService(nil, time.Second, zerolog.Nop())
	if service.ProbeCount() != 0 {
		t.Errorf("expected 0 probes, got %d", service.ProbeCount())
	}
	if results := service.Check(context.Background()); len(results) != 0 {
		t.Errorf("expected empty results, got %v", results)
	}
}
