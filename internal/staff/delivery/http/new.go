package http

import (
	"nexstock/internal/staff"
	"nexstock/pkg/log"
)

type handler struct {
	l  log.Logger
	uc staff.UseCase
}

// New creates a new HTTP handler for staff members and tasks.
func New(l log.Logger, uc staff.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
