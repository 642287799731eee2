package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authapp "github.com/stonique/storefront/internal/auth/app"
	catalogapp "github.com/stonique/storefront/internal/catalog/app"
	checkoutapp "github.com/stonique/storefront/internal/checkout/app"
)

// statusFromErr maps service errors to an HTTP status and a stable code
// string for clients.
func statusFromErr(err error) (int, string) {
	switch {
	case errors.Is(err, authapp.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_ARGUMENT"
	case errors.Is(err, catalogapp.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, catalogapp.ErrUnavailable):
		return http.StatusServiceUnavailable, "UNAVAILABLE"
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		return http.StatusBadRequest, "EMPTY_CART"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func writeError(c *gin.Context, err error) {
	status, code := statusFromErr(err)
	c.JSON(status, gin.H{
		"error": err.Error(),
		"code":  code,
	})
}
