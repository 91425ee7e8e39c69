package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pixieai/pixie-ai-service/internal/interfaces/httpserver/responses"
)

// ErrorMapper logs errors recorded on the context during handling and,
// when no response has been written, maps them to the fixed internal
// error contract.
func ErrorMapper(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, ginErr := range c.Errors {
			logEvent := log.Error().
				Str("error_type", fmt.Sprintf("%T", ginErr.Err)).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Err(ginErr.Err)
			if requestID := RequestIDFromContext(c); requestID != "" {
				logEvent = logEvent.Str("request_id", requestID)
			}
			logEvent.Msg("request error")
		}

		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, responses.NewInternalError())
		}
	}
}
