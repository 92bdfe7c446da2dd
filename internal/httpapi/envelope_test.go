package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	catalogapp "github.com/shopcraft/storefront/internal/catalog/app"
	orderapp "github.com/shopcraft/storefront/internal/order/app"
	"github.com/shopcraft/storefront/internal/storeerr"
)

func TestStatusFromError(t *testing.T) {
	t.Run("NotAuthenticated -> 401", func(t *testing.T) {
		gotStatus, gotCode := statusFromError(orderapp.ErrNotAuthenticated)
		if gotStatus != http.StatusUnauthorized || gotCode != "NOT_AUTHENTICATED" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("PermissionDenied -> 403", func(t *testing.T) {
		gotStatus, gotCode := statusFromError(storeerr.ErrPermissionDenied)
		if gotStatus != http.StatusForbidden || gotCode != "PERMISSION_DENIED" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("NotFound -> 404", func(t *testing.T) {
		for _, err := range []error{catalogapp.ErrNotFound, storeerr.ErrNotFound} {
			gotStatus, gotCode := statusFromError(err)
			if gotStatus != http.StatusNotFound || gotCode != "NOT_FOUND" {
				t.Fatalf("got (%d,%s)", gotStatus, gotCode)
			}
		}
	})

	t.Run("wrapped NotFound -> 404", func(t *testing.T) {
		err := fmt.Errorf("get order: %w", storeerr.ErrNotFound)
		gotStatus, gotCode := statusFromError(err)
		if gotStatus != http.StatusNotFound || gotCode != "NOT_FOUND" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("EmptyCart -> 422", func(t *testing.T) {
		gotStatus, gotCode := statusFromError(orderapp.ErrEmptyCart)
		if gotStatus != http.StatusUnprocessableEntity || gotCode != "EMPTY_CART" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("InvalidStatus -> 400", func(t *testing.T) {
		gotStatus, gotCode := statusFromError(orderapp.ErrInvalidStatus)
		if gotStatus != http.StatusBadRequest || gotCode != "INVALID_ARGUMENT" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("Unavailable -> 503", func(t *testing.T) {
		gotStatus, gotCode := statusFromError(storeerr.ErrUnavailable)
		if gotStatus != http.StatusServiceUnavailable || gotCode != "UNAVAILABLE" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("unknown error -> 500", func(t *testing.T) {
		gotStatus, gotCode := statusFromError(errors.New("boom"))
		if gotStatus != http.StatusInternalServerError || gotCode != "INTERNAL" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})
}
