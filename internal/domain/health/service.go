// Package health aggregates reachability probes over the service's
// external dependencies.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Probe reports reachability of one external dependency.
type Probe interface {
	Name() string
	Check(ctx context.Context) error
}

type probeFunc struct {
	name  string
	check func(ctx context.Context) error
}

func (p probeFunc) Name() string { return p.name }

func (p probeFunc) Check(ctx context.Context) error { return p.check(ctx) }

// NewProbe adapts a name and check function to the Probe interface.
func NewProbe(name string, check func(ctx context.Context) error) Probe {
	return probeFunc{name: name, check: check}
}

// Result is one dependency's outcome for a sweep.
type Result struct {
	Name    string
	Healthy bool
	Latency time.Duration
	Err     error
}

// Service sweeps the registered probes. It is stateless between sweeps;
// every Check returns a fresh snapshot.
type Service struct {
	probes  []Probe
	timeout time.Duration
	log     zerolog.Logger
}

// NewService builds the readiness service. The timeout bounds a whole
// sweep; probes still running when it expires report as unhealthy.
func NewService(probes []Probe, timeout time.Duration, log zerolog.Logger) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{
		probes:  probes,
		timeout: timeout,
		log:     log,
	}
}

// ProbeCount returns the number of registered probes.
func (s *Service) ProbeCount() int {
	return len(s.probes)
}

// Check runs every probe concurrently under the sweep timeout and returns
// results in registration order.
func (s *Service) Check(ctx context.Context) []Result {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	results := make([]Result, len(s.probes))
	var wg sync.WaitGroup
	for i, probe := range s.probes {
		wg.Add(1)
		go func(i int, probe Probe) {
			defer wg.Done()
			start := time.Now()
			err := probe.Check(ctx)
			if err != nil {
				s.log.Debug().Str("dependency", probe.Name()).Err(err).Msg("probe failed")
			}
			results[i] = Result{
				Name:    probe.Name(),
				Healthy: err == nil,
				Latency: time.Since(start),
				Err:     err,
			}
		}(i, probe)
	}
	wg.Wait()
	return results
}
