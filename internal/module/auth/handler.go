package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/black-cross/backend/internal/domain"
	"github.com/black-cross/backend/internal/pkg"
	"github.com/black-cross/backend/pkg/metrics"
)

// Handler handles REST API requests for authentication.
type Handler struct {
	svc Service
}

// NewHandler creates a new auth Handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Login handles POST /api/v1/auth/login.
//
// Well-formed bodies always answer 200; the success flag carries the
// verdict. An invalid credential is not an HTTP error.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	result, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if domain.IsUnauthorized(err) {
			metrics.RecordLoginAttempt("failure")
			c.JSON(http.StatusOK, pkg.ErrorResponse{
				Success: false,
				Error:   "Invalid credentials",
			})
			return
		}
		pkg.Error(c, err)
		return
	}

	metrics.RecordLoginAttempt("success")
	c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		Token:   result.Token,
		User:    result.User,
	})
}
