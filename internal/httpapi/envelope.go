package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cartapp "github.com/shopcraft/storefront/internal/cart/app"
	catalogapp "github.com/shopcraft/storefront/internal/catalog/app"
	orderapp "github.com/shopcraft/storefront/internal/order/app"
	"github.com/shopcraft/storefront/internal/storeerr"
	userapp "github.com/shopcraft/storefront/internal/user/app"
)

// Every endpoint answers with the same envelope: {"success":true,"data":...}
// or {"success":false,"error":...,"code":...}. Handlers never let an error
// escape as anything else.

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondErr(c *gin.Context, err error) {
	status, code := statusFromError(err)
	c.JSON(status, gin.H{"success": false, "error": err.Error(), "code": code})
}

// statusFromError maps the closed set of domain and store error kinds onto
// HTTP statuses. Unknown errors deliberately collapse to 500.
func statusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, orderapp.ErrNotAuthenticated):
		return http.StatusUnauthorized, "NOT_AUTHENTICATED"
	case errors.Is(err, storeerr.ErrPermissionDenied):
		return http.StatusForbidden, "PERMISSION_DENIED"
	case errors.Is(err, catalogapp.ErrNotFound), errors.Is(err, storeerr.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, orderapp.ErrEmptyCart):
		return http.StatusUnprocessableEntity, "EMPTY_CART"
	case errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, cartapp.ErrInvalidInput),
		errors.Is(err, orderapp.ErrInvalidInput),
		errors.Is(err, orderapp.ErrInvalidStatus),
		errors.Is(err, userapp.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_ARGUMENT"
	case errors.Is(err, storeerr.ErrConflict):
		return http.StatusConflict, "CONFLICT"
	case errors.Is(err, storeerr.ErrUnavailable):
		return http.StatusServiceUnavailable, "UNAVAILABLE"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}
