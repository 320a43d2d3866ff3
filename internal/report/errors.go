package report

import "errors"

var (
	ErrExportNotConfigured = errors.New("inventory export is not configured")
	ErrExportFailed        = errors.New("inventory export failed")
)
