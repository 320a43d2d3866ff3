package http

import (
	"errors"
	"net/http"

	"nexstock/internal/payroll"
	pkgErrors "nexstock/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, payroll.ErrRecordNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, payroll.ErrDuplicateRecord),
		errors.Is(err, payroll.ErrAlreadyPaid):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, payroll.ErrStaffNotFound),
		errors.Is(err, payroll.ErrInvalidMonth),
		errors.Is(err, payroll.ErrInvalidStatus),
		errors.Is(err, payroll.ErrNegativeAmount):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
