package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert payroll record")
	ErrFailedToUpdate = errors.New("failed to update payroll record")
)
