package pkg

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/black-cross/backend/internal/domain"
)

// ErrorResponse is the JSON envelope for error responses.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ValidationErrorResponse is the JSON envelope for field-level validation errors.
type ValidationErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields"`
}

// Error sends a JSON error response. If err is a *domain.AppError, its code is
// mapped to the appropriate HTTP status; otherwise 500 is returned.
func Error(c *gin.Context, err error) {
	status := domain.HTTPStatusCode(err)

	var appErr *domain.AppError
	msg := "internal error"
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}

	c.JSON(status, ErrorResponse{Success: false, Error: msg})
}

// NotFound sends the 404 error body used for unmatched routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Success: false, Error: "not found"})
}

// BindAndValidate binds the JSON request body to obj and validates it.
// On failure it sends a 400 response and returns false.
//
// Binding failures fall into two classes: constraint violations from
// validator tags produce a field-level error map, while syntax errors
// (malformed JSON, wrong types) produce a generic error body. The parse
// detail is logged rather than echoed to the client.
//
// Usage in handlers:
//
//	if !pkg.BindAndValidate(c, &req) { return }
func BindAndValidate(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		slog.WarnContext(c.Request.Context(), "malformed request body",
			slog.String("path", c.Request.URL.Path),
			slog.Any("error", err),
		)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "invalid request body",
		})
		return false
	}

	fieldErrors := make(map[string]string, len(ve))
	for _, fe := range ve {
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		fieldErrors[fe.Field()] = msg
	}

	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Success: false,
		Error:   "validation error",
		Fields:  fieldErrors,
	})
	return false
}
