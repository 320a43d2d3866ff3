package http

import (
	"errors"
	"net/http"

	"nexstock/internal/staff"
	pkgErrors "nexstock/pkg/errors"
)

var errIDRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, staff.ErrMemberNotFound),
		errors.Is(err, staff.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, staff.ErrAssigneeNotFound),
		errors.Is(err, staff.ErrInvalidPayload),
		errors.Is(err, staff.ErrInvalidStatus),
		errors.Is(err, staff.ErrInvalidPriority),
		errors.Is(err, staff.ErrInvalidRating),
		errors.Is(err, staff.ErrInvalidAttendance),
		errors.Is(err, staff.ErrNegativeAmount),
		errors.Is(err, staff.ErrDueBeforeStartDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
