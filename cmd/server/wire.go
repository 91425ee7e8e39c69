//go:build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/pixieai/pixie-ai-service/internal/config"
	"github.com/pixieai/pixie-ai-service/internal/infrastructure/crontab"
	"github.com/pixieai/pixie-ai-service/internal/infrastructure/inference"
	"github.com/pixieai/pixie-ai-service/internal/infrastructure/logger"
	"github.com/pixieai/pixie-ai-service/internal/interfaces/httpserver"
)

// BuildApplication demonstrates how to assemble the service with Wire.
func BuildApplication() (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		connectDatabase,
		newRedisCache,
		newVectorStore,
		inference.NewRegistry,
		newProbes,
		newHealthService,
		crontab.New,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}
