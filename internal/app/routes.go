package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/black-cross/backend/internal/pkg"
	"github.com/black-cross/backend/pkg/metrics"
)

// RouteDeps holds all dependencies needed to register routes.
type RouteDeps struct {
	Modules        []Module
	MetricsEnabled bool
	MetricsPath    string
}

// RegisterRoutes registers all application routes on the given gin.Engine.
func RegisterRoutes(r *gin.Engine, deps *RouteDeps) error {
	if r == nil {
		return errors.New("router is nil")
	}
	if deps == nil {
		return errors.New("route dependencies are nil")
	}
	if len(deps.Modules) == 0 {
		return errors.New("at least one module is required")
	}

	// Health check, on both the bare and the versioned path.
	r.GET("/health", healthHandler())

	api := r.Group("/api/v1")
	api.GET("/health", healthHandler())

	// Register module routes.
	for i, m := range deps.Modules {
		if m == nil {
			return fmt.Errorf("module at index %d is nil", i)
		}
		m.RegisterRoutes(api)
	}

	// Prometheus exposition from the service's own registry.
	if deps.MetricsEnabled {
		if deps.MetricsPath == "" {
			return errors.New("metrics path is required when metrics are enabled")
		}
		r.GET(deps.MetricsPath, gin.WrapH(promhttp.HandlerFor(
			metrics.GetRegistry(),
			promhttp.HandlerOpts{},
		)))
	}

	r.NoRoute(noRouteHandler())

	return nil
}

// healthHandler returns the stub health report. Only the timestamp varies
// per call; the services map is fixed and probes nothing.
func healthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "operational",
			"timestamp": time.Now().Format(time.RFC3339),
			"services": gin.H{
				"database": "connected",
				"redis":    "connected",
			},
		})
	}
}

// noRouteHandler returns a handler that answers unmatched paths with the
// JSON 404 body.
func noRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		pkg.NotFound(c)
	}
}
