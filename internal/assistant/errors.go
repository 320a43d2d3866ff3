package assistant

import "errors"

var (
	ErrEmptyQuery        = errors.New("query must not be empty")
	ErrSessionIDRequired = errors.New("session id is required")
	ErrSessionNotFound   = errors.New("session not found")
	ErrForecastNotFound  = errors.New("no forecast recorded for product")
)
