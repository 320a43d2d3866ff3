package http

import (
	"nexstock/internal/shipment"
	"nexstock/pkg/log"
)

type handler struct {
	l  log.Logger
	uc shipment.UseCase
}

// New creates a new HTTP handler for shipments.
func New(l log.Logger, uc shipment.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
