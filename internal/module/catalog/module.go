package catalog

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the feature-area catalog.
type Module struct {
	handler *Handler
	names   []string
}

// NewModule creates a new catalog Module serving the stock feature areas.
// Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("catalog.NewModule: handler must not be nil")
	}
	return &Module{handler: h, names: Names}
}

// RegisterRoutes registers the catalog API routes.
//
// Each module name gets three explicit routes: the list route, its
// trailing-slash spelling, and the health subroute. Registering the
// trailing-slash variant directly lets it answer 200 instead of going
// through gin's 301 redirect.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	for _, name := range m.names {
		api.GET("/"+name, m.handler.List(name))
		api.GET("/"+name+"/", m.handler.List(name))
		api.GET("/"+name+"/health", m.handler.Health(name))
	}
}
