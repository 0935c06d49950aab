package middleware

import (
	"strconv"
	"time"

	"swiss-virtual-airline/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records per-request counters and latency. Unmatched
// routes share one label value to keep cardinality bounded.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.HTTPRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
