package handlers

import (
	"github.com/pixieai/pixie-ai-service/internal/config"
	"github.com/pixieai/pixie-ai-service/internal/domain/health"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Status    *StatusHandler
	Readiness *ReadinessHandler
}

// NewProvider constructs the handler provider.
func NewProvider(cfg *config.Config, healthService *health.Service) *Provider {
	return &Provider{
		Status:    NewStatusHandler(cfg),
		Readiness: NewReadinessHandler(healthService),
	}
}
