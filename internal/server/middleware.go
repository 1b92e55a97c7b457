package server

import (
	"strconv"
	"time"

	"meetingroom/internal/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request count and latency under the route
// template, so /users/7/reservations and /users/8/reservations share a series.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.RecordHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
