package http

import (
	"errors"
	"net/http"

	"nexstock/internal/supplier"
	pkgErrors "nexstock/pkg/errors"
)

var errIDRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, supplier.ErrSupplierNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, supplier.ErrInvalidPayload),
		errors.Is(err, supplier.ErrInvalidRating),
		errors.Is(err, supplier.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
