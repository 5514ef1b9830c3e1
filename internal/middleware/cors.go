package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig holds the configuration for the CORS middleware.
type CORSConfig struct {
	// AllowOrigins is a list of origins that are allowed to make cross-origin requests.
	// Use ["*"] to allow all origins (the mock backend's default).
	AllowOrigins []string

	// AllowMethods is a list of HTTP methods allowed for cross-origin requests.
	AllowMethods []string

	// AllowHeaders is a list of headers allowed in cross-origin requests.
	AllowHeaders []string

	// MaxAge indicates how long (in seconds) the results of a preflight request can be cached.
	MaxAge string
}

// DefaultCORSConfig returns the permissive configuration the mock backend
// serves to its frontend: wildcard origin, the three methods it implements,
// and a one-day preflight cache.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       "86400",
	}
}

// CORS returns a gin middleware that handles Cross-Origin Resource Sharing
// using DefaultCORSConfig.
func CORS() gin.HandlerFunc {
	return CORSWithConfig(DefaultCORSConfig())
}

// CORSWithConfig returns a gin middleware that handles Cross-Origin Resource
// Sharing using the provided configuration.
//
// Unlike a browser-minimal implementation, the headers are attached to every
// response whether or not the request carries an Origin header: the wire
// contract promises Access-Control-Allow-Origin on all successful responses.
// OPTIONS requests on any path short-circuit to an empty 200 before routing,
// so unknown paths preflight successfully too.
func CORSWithConfig(cfg CORSConfig) gin.HandlerFunc {
	allowOrigins := strings.Join(cfg.AllowOrigins, ", ")
	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")
	wildcard := allowOrigins == "*"

	return func(c *gin.Context) {
		if wildcard {
			c.Header("Access-Control-Allow-Origin", "*")
		} else {
			origin := c.GetHeader("Origin")
			// Caches must differentiate responses by Origin when the
			// allowed origin is echoed back.
			c.Writer.Header().Add("Vary", "Origin")
			if origin != "" && originAllowed(cfg.AllowOrigins, origin) {
				c.Header("Access-Control-Allow-Origin", origin)
			}
		}

		c.Header("Access-Control-Allow-Methods", allowMethods)
		c.Header("Access-Control-Allow-Headers", allowHeaders)
		c.Header("Access-Control-Max-Age", cfg.MaxAge)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// originAllowed checks whether the given origin is in the allowed list.
func originAllowed(allowed []string, origin string) bool {
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}
