package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/internal/ctxlog"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestLogger attaches a request-scoped logger to the request context and
// logs one line per completed request. A valid incoming X-Request-ID is kept;
// otherwise a new UUID is issued.
func RequestLogger(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetHeader(RequestIDHeader))
		if err != nil {
			id = uuid.New()
		}
		c.Header(RequestIDHeader, id.String())

		logger := base.With("request_id", id.String(), "method", c.Request.Method, "path", c.Request.URL.Path)
		c.Request = c.Request.WithContext(ctxlog.WithLogger(c.Request.Context(), logger))

		began := time.Now()
		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= 500 {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request completed",
			"status", c.Writer.Status(), "duration", time.Since(began))
	}
}
