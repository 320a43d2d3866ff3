package payroll

import "errors"

var (
	ErrRecordNotFound  = errors.New("payroll record not found")
	ErrDuplicateRecord = errors.New("payroll record already exists for this month")
	ErrStaffNotFound   = errors.New("staff member not found")
	ErrInvalidMonth    = errors.New("month must look like \"October 2024\"")
	ErrInvalidStatus   = errors.New("status must be Pending, Processing or Paid")
	ErrNegativeAmount  = errors.New("amounts must not be negative")
	ErrAlreadyPaid     = errors.New("payroll record is already paid")
)
