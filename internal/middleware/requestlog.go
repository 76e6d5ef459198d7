package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sliceinsights/picklematch-backend/internal/logger"
)

// RequestLogger logs every request with method, path, status and duration.
func RequestLogger(baseLog *logger.Logger) gin.HandlerFunc {
	log := baseLog.With("middleware", "RequestLogger")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.With(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", float64(time.Since(start).Microseconds())/1000.0,
			"client_ip", c.ClientIP(),
		)
		if c.Writer.Status() >= 400 {
			entry.Warn("request failed")
		} else {
			entry.Info("request completed")
		}
	}
}
