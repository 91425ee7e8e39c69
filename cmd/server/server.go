package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pixieai/pixie-ai-service/internal/config"
	"github.com/pixieai/pixie-ai-service/internal/domain/health"
	"github.com/pixieai/pixie-ai-service/internal/infrastructure/cache"
	"github.com/pixieai/pixie-ai-service/internal/infrastructure/crontab"
	"github.com/pixieai/pixie-ai-service/internal/infrastructure/database"
	"github.com/pixieai/pixie-ai-service/internal/infrastructure/inference"
	"github.com/pixieai/pixie-ai-service/internal/infrastructure/logger"
	"github.com/pixieai/pixie-ai-service/internal/infrastructure/observability"
	"github.com/pixieai/pixie-ai-service/internal/infrastructure/vectorstore"
	"github.com/pixieai/pixie-ai-service/internal/interfaces/httpserver"
	"github.com/pixieai/pixie-ai-service/internal/lifecycle"
)

// @title Pixie AI Service
// @version 0.1.0
// @description AI productivity assistant backend for task and event management
// @BasePath /
type Application struct {
	httpServer *httpserver.HttpServer
	monitor    *crontab.Crontab
	providers  *inference.Registry
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, monitor *crontab.Crontab, providers *inference.Registry, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		monitor:    monitor,
		providers:  providers,
		log:        log,
	}
}

// Start runs the HTTP listener and the dependency monitor until the context
// is cancelled or either of them fails.
func (a *Application) Start(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.httpServer.Run(gctx)
	})
	g.Go(func() error {
		return a.monitor.Run(gctx)
	})
	return g.Wait()
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("tracing setup failed, continuing without exporter")
		shutdownTelemetry = func(context.Context) error { return nil }
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db := connectDatabase(cfg, log)
	redisCache := newRedisCache(cfg, log)
	vectorClient := newVectorStore(cfg, log)
	providers := inference.NewRegistry(cfg, log)

	healthService := newHealthService(cfg, newProbes(db, redisCache, vectorClient), log)
	monitor := crontab.New(healthService, cfg, log)

	httpServer := httpserver.New(cfg, log, healthService)
	app := NewApplication(httpServer, monitor, providers, log)

	err = lifecycle.Run(log, cfg, func() error {
		return app.Start(ctx)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

// connectDatabase opens the read-only postgres handle. The service starts
// without it; a missing or unreachable database only costs the probe.
func connectDatabase(cfg *config.Config, log zerolog.Logger) *gorm.DB {
	if cfg.DatabaseURL == "" {
		log.Info().Msg("DATABASE_URL not set, skipping postgres")
		return nil
	}

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		log.Warn().Err(err).Msg("postgres unavailable, continuing without it")
		return nil
	}
	return db
}

func newRedisCache(cfg *config.Config, log zerolog.Logger) *cache.Redis {
	redisCache, err := cache.New(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis client not created, continuing without it")
		return nil
	}
	return redisCache
}

func newVectorStore(cfg *config.Config, log zerolog.Logger) *vectorstore.Client {
	if cfg.QdrantHost == "" {
		log.Info().Msg("QDRANT_HOST not set, vector store disabled")
		return nil
	}
	return vectorstore.NewClient(cfg.QdrantBaseURL(), cfg.QdrantAPIKey)
}

func newProbes(db *gorm.DB, redisCache *cache.Redis, vectorClient *vectorstore.Client) []health.Probe {
	probes := make([]health.Probe, 0, 3)
	if db != nil {
		probes = append(probes, health.NewProbe("postgres", func(ctx context.Context) error {
			return database.Ping(ctx, db)
		}))
	}
	if redisCache != nil {
		probes = append(probes, health.NewProbe("redis", redisCache.Ping))
	}
	if vectorClient.IsEnabled() {
		probes = append(probes, health.NewProbe("qdrant", vectorClient.Healthz))
	}
	return probes
}

func newHealthService(cfg *config.Config, probes []health.Probe, log zerolog.Logger) *health.Service {
	return health.NewService(probes, cfg.ProbeTimeout, log)
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			// Load rather than Overload: real environment variables win
			// over .env entries.
			if err := godotenv.Load(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
