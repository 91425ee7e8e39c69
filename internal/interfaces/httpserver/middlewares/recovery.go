package middlewares

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pixieai/pixie-ai-service/internal/interfaces/httpserver/responses"
)

// Recovery converts any panic escaping a handler into the fixed internal
// error contract. Diagnostic detail, including the panic type and stack,
// stays in the server log; the response body never carries it.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			logEvent := log.Error().
				Str("panic_type", fmt.Sprintf("%T", r)).
				Str("panic", fmt.Sprint(r)).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Bytes("stack", debug.Stack())
			if requestID := RequestIDFromContext(c); requestID != "" {
				logEvent = logEvent.Str("request_id", requestID)
			}

			// The client is gone on a broken connection; log and abort
			// without attempting a response write.
			if isBrokenConnection(r) {
				logEvent.Msg("connection broken during request")
				c.Abort()
				return
			}

			logEvent.Msg("recovered from panic")
			c.AbortWithStatusJSON(http.StatusInternalServerError, responses.NewInternalError())
		}()

		c.Next()
	}
}

// isBrokenConnection reports whether the panic value is a network error
// caused by the peer closing the connection mid-request.
func isBrokenConnection(r any) bool {
	err, ok := r.(error)
	if !ok {
		return false
	}
	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		return false
	}
	var sysErr *os.SyscallError
	if !errors.As(opErr.Err, &sysErr) {
		return false
	}
	msg := strings.ToLower(sysErr.Error())
	return strings.Contains(msg, "broken pipe") || strings.Contains(msg, "connection reset by peer")
}
