package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/metrics"
)

// Metrics records request count and latency per matched route.
// Scrapes of /metrics are not recorded.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
