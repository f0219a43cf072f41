package handler

import (
	"errors"
	"net/http"

	"github.com/akniet/push-analytics/internal/domain"
	"github.com/labstack/echo/v4"
)

// problemDetails is the RFC 7807 shape used across the handler layer,
// mirroring the one the auth middleware already returns (spec.md §7).
type problemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

const (
	typeValidation       = "https://push-analytics.app/errors/validation"
	typeNotFound         = "https://push-analytics.app/errors/not-found"
	typeStoreUnavailable = "https://push-analytics.app/errors/store-unavailable"
)

func validationError(c echo.Context, field string) error {
	return c.JSON(http.StatusBadRequest, problemDetails{
		Type:     typeValidation,
		Title:    "Validation Failure",
		Status:   http.StatusBadRequest,
		Detail:   "missing or invalid field: " + field,
		Instance: c.Request().URL.Path,
	})
}

func notFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusBadRequest, problemDetails{
		Type:     typeNotFound,
		Title:    "Customer Not Found",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

func storeUnavailableError(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, problemDetails{
		Type:     typeStoreUnavailable,
		Title:    "Store Unavailable",
		Status:   http.StatusInternalServerError,
		Detail:   err.Error(),
		Instance: c.Request().URL.Path,
	})
}

// storeError classifies a domain.CustomerStore error into the right HTTP
// response (spec.md §7): ErrNotFound is a 400 on specific-client
// endpoints, everything else is treated as StoreUnavailable.
func storeError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return notFoundError(c, "client_code not found")
	}
	return storeUnavailableError(c, err)
}
