package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pixieai/pixie-ai-service/internal/domain/health"
	"github.com/pixieai/pixie-ai-service/internal/interfaces/httpserver/responses"
)

// ReadinessHandler exposes the dependency readiness endpoint.
type ReadinessHandler struct {
	health *health.Service
}

// NewReadinessHandler constructs the handler.
func NewReadinessHandler(healthService *health.Service) *ReadinessHandler {
	return &ReadinessHandler{health: healthService}
}

// Ready handles GET /readyz
// @Summary Readiness check
// @Description Probes configured dependencies and reports per-dependency reachability.
// No dependency sits in the request path, so the endpoint always returns 200.
// @Tags Status
// @Produce json
// @Success 200 {object} responses.Readiness
// @Router /readyz [get]
func (h *ReadinessHandler) Ready(c *gin.Context) {
	results := h.health.Check(c.Request.Context())

	deps := make([]responses.Dependency, 0, len(results))
	for _, r := range results {
		status := "up"
		if !r.Healthy {
			status = "down"
		}
		deps = append(deps, responses.Dependency{
			Name:      r.Name,
			Status:    status,
			LatencyMS: float64(r.Latency.Microseconds()) / 1000.0,
		})
	}

	c.JSON(http.StatusOK, responses.Readiness{
		Status:       "ready",
		Dependencies: deps,
	})
}
