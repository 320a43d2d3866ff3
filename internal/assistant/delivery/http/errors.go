package http

import (
	"errors"
	"net/http"

	"nexstock/internal/assistant"
	"nexstock/internal/catalog"
	pkgErrors "nexstock/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyQuery),
		errors.Is(err, assistant.ErrSessionIDRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, assistant.ErrSessionNotFound),
		errors.Is(err, assistant.ErrForecastNotFound),
		errors.Is(err, catalog.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
