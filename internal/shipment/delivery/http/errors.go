package http

import (
	"errors"
	"net/http"

	"nexstock/internal/shipment"
	pkgErrors "nexstock/pkg/errors"
)

var errIDRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, shipment.ErrShipmentNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, shipment.ErrDuplicateTrackingID):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, shipment.ErrInvalidType),
		errors.Is(err, shipment.ErrInvalidStatus),
		errors.Is(err, shipment.ErrInvalidProgress),
		errors.Is(err, shipment.ErrNegativeQuantity):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
