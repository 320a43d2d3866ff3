package http

import (
	"nexstock/internal/supplier"
	"nexstock/pkg/log"
)

type handler struct {
	l  log.Logger
	uc supplier.UseCase
}

// New creates a new HTTP handler for suppliers.
func New(l log.Logger, uc supplier.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
