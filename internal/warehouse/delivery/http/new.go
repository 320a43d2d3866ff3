package http

import (
	"nexstock/internal/warehouse"
	"nexstock/pkg/log"
)

type handler struct {
	l  log.Logger
	uc warehouse.UseCase
}

// New creates a new HTTP handler for the warehouse domain.
func New(l log.Logger, uc warehouse.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
