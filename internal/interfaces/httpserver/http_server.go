package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	pixiedocs "github.com/pixieai/pixie-ai-service/docs/swagger"
	"github.com/pixieai/pixie-ai-service/internal/config"
	"github.com/pixieai/pixie-ai-service/internal/domain/health"
	"github.com/pixieai/pixie-ai-service/internal/infrastructure/metrics"
	"github.com/pixieai/pixie-ai-service/internal/interfaces/httpserver/handlers"
	"github.com/pixieai/pixie-ai-service/internal/interfaces/httpserver/middlewares"
)

// HttpServer wraps the gin engine with graceful shutdown helpers.
type HttpServer struct {
	cfg         *config.Config
	engine      *gin.Engine
	log         zerolog.Logger
	handlerProv *handlers.Provider
}

// New constructs the HTTP server with default middleware and routes.
func New(cfg *config.Config, log zerolog.Logger, healthService *health.Service) *HttpServer {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	pixiedocs.SwaggerInfo.BasePath = "/"

	engine := gin.New()
	engine.Use(middlewares.RequestID())
	engine.Use(middlewares.Tracing(config.ServiceName))
	engine.Use(middlewares.RequestLogger(log))
	engine.Use(middlewares.MetricsRecorder())
	engine.Use(middlewares.Recovery(log))
	engine.Use(middlewares.ErrorMapper(log))
	engine.Use(middlewares.CORS(cfg.AllowedOriginsList()))

	handlerProvider := handlers.NewProvider(cfg, healthService)
	registerCoreRoutes(engine, handlerProvider)

	return &HttpServer{
		cfg:         cfg,
		engine:      engine,
		log:         log,
		handlerProv: handlerProvider,
	}
}

// Run starts the HTTP listener and handles graceful shutdown via context cancellation.
func (s *HttpServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr()).Msg("HTTP server listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("HTTP server error")
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.log.Info().Msg("Context cancelled, shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func registerCoreRoutes(engine *gin.Engine, handlerProvider *handlers.Provider) {
	engine.GET("/", handlerProvider.Status.Root)
	engine.GET("/health", handlerProvider.Status.Health)
	engine.GET("/readyz", handlerProvider.Readiness.Ready)

	engine.GET("/metrics", gin.WrapH(metrics.Handler()))
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
