package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pixieai/pixie-ai-service/internal/config"
	"github.com/pixieai/pixie-ai-service/internal/interfaces/httpserver/responses"
)

// StatusHandler exposes the root status and health check endpoints.
type StatusHandler struct {
	cfg *config.Config
}

// NewStatusHandler constructs the handler.
func NewStatusHandler(cfg *config.Config) *StatusHandler {
	return &StatusHandler{cfg: cfg}
}

// Root handles GET /
// @Summary Service status
// @Description Reports that the service is running
// @Tags Status
// @Produce json
// @Success 200 {object} responses.ServiceStatus
// @Router / [get]
func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, responses.ServiceStatus{
		Service: config.ServiceName,
		Status:  "running",
	})
}

// Health handles GET /health
// @Summary Health check
// @Description Liveness probe reporting the service version and environment
// @Tags Status
// @Produce json
// @Success 200 {object} responses.Health
// @Router /health [get]
func (h *StatusHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, responses.Health{
		Status:      "healthy",
		Version:     config.Version,
		Environment: h.cfg.Environment,
	})
}
