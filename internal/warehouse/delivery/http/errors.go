package http

import (
	"errors"
	"net/http"

	"nexstock/internal/warehouse"
	pkgErrors "nexstock/pkg/errors"
)

func (h *handler) mapError(err error) error {
	if errors.Is(err, warehouse.ErrWarehouseNotFound) {
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return pkgErrors.ErrInternalServerError
}
