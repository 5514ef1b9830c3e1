package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/black-cross/backend/pkg/metrics"
)

// Handler handles REST API requests for the module catalog.
type Handler struct{}

// NewHandler creates a new catalog Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// List returns the handler for GET /api/v1/{module} and its trailing-slash
// variant. The payload is fixed: an empty collection tagged with the module
// name.
func (h *Handler) List(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.RecordModuleRequest(name)
		c.JSON(http.StatusOK, ListResponse{
			Success: true,
			Data:    []any{},
			Total:   0,
			Module:  name,
		})
	}
}

// Health returns the handler for GET /api/v1/{module}/health.
func (h *Handler) Health(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.RecordModuleRequest(name)
		c.JSON(http.StatusOK, HealthResponse{
			Module:  name,
			Status:  statusOperational,
			Version: moduleVersion,
		})
	}
}
