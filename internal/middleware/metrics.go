package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/black-cross/backend/pkg/metrics"
)

// Metrics returns a gin middleware that records request count and latency
// in the Prometheus registry.
//
// The endpoint label uses the registered route pattern, not the raw URL
// path, to keep label cardinality bounded. Requests that match no route
// (404s and short-circuited OPTIONS) are grouped under "unmatched".
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())
		elapsedMs := float64(time.Since(start).Microseconds()) / 1000.0

		metrics.RecordHTTPRequest(endpoint, method, status)
		metrics.RecordHTTPRequestDuration(endpoint, method, status, elapsedMs)
	}
}
