package http

import (
	"nexstock/internal/payroll"
	"nexstock/pkg/log"
)

type handler struct {
	l  log.Logger
	uc payroll.UseCase
}

// New creates a new HTTP handler for payroll.
func New(l log.Logger, uc payroll.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
