package http

import (
	"errors"
	"net/http"

	"nexstock/internal/catalog"
	pkgErrors "nexstock/pkg/errors"
)

var errIDRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")

// mapError translates catalog errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, catalog.ErrDuplicateSKU):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, catalog.ErrInvalidPayload),
		errors.Is(err, catalog.ErrNegativeQuantity),
		errors.Is(err, catalog.ErrWarehouseNotFound):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
