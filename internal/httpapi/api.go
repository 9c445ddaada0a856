package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "mihrab/internal/platform/errors"
)

type APIError struct {
	Code    int
	Message string
}

type HandlerFunc func(c *gin.Context) (any, *APIError)

// ResolveEndpoint writes the handler result as JSON, or its error as
// {"error": message} with the error's status code.
func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, apiErr := h(c)
		if apiErr != nil {
			c.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}
		if result == nil {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func badRequest(msg string) *APIError {
	return &APIError{Code: http.StatusBadRequest, Message: msg}
}

// fromError maps the application error taxonomy onto HTTP status codes.
func fromError(err error) *APIError {
	if err == nil {
		return nil
	}
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrLocationUnavailable):
		// checked first: an unusable device fix also wraps ErrInvalidInput
		code = http.StatusServiceUnavailable
	case errors.Is(err, apperrors.ErrInvalidInput):
		code = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, apperrors.ErrItemCompleted):
		code = http.StatusConflict
	case errors.Is(err, apperrors.ErrPrayerTimesUnavailable), errors.Is(err, apperrors.ErrCatalogUnavailable):
		code = http.StatusBadGateway
	}
	return &APIError{Code: code, Message: err.Error()}
}

// Module attaches a group of endpoints to a router group.
type Module interface {
	Mount(g *gin.RouterGroup)
}

type ModuleFunc func(g *gin.RouterGroup)

func (f ModuleFunc) Mount(g *gin.RouterGroup) { f(g) }

func MountGroup(parent *gin.Engine, prefix string, modules ...Module) {
	g := parent.Group(prefix)
	for _, m := range modules {
		m.Mount(g)
	}
}
