package http

import (
	"nexstock/internal/report"
	"nexstock/pkg/log"
)

type handler struct {
	l  log.Logger
	uc report.UseCase
}

// New creates a new HTTP handler for reports.
func New(l log.Logger, uc report.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
