package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/atlas/internal/logger"
)

// RequestLogger writes one log entry per request through log
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := map[string]interface{}{
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		}
		if query := c.Request.URL.RawQuery; query != "" {
			fields["query"] = query
		}

		if len(c.Errors) > 0 {
			log.Error(c.Errors.Last(), fields)
			return
		}
		log.Info("request", fields)
	}
}
