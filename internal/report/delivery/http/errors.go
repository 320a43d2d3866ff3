package http

import (
	"errors"
	"net/http"

	"nexstock/internal/report"
	pkgErrors "nexstock/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrExportNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, report.ErrExportFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, report.ErrExportFailed.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
