package httpapi

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// optionalFloat reads a float query parameter; absent or blank yields nil.
func optionalFloat(c *gin.Context, name string) (*float64, *APIError) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, badRequest(name + " must be a number")
	}
	return &v, nil
}

func optionalInt(c *gin.Context, name string) (*int, *APIError) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, badRequest(name + " must be an integer")
	}
	return &v, nil
}

func intOrZero(c *gin.Context, name string) (int, *APIError) {
	v, apiErr := optionalInt(c, name)
	if apiErr != nil || v == nil {
		return 0, apiErr
	}
	return *v, nil
}
