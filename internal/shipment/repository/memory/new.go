package memory

import (
	"nexstock/internal/shipment"
	"nexstock/internal/shipment/repository"
	"nexstock/pkg/log"
	"nexstock/pkg/memstore"
)

type implRepository struct {
	shipments *memstore.Store[shipment.Shipment]
	l         log.Logger
}

// New creates an in-memory shipment Repository seeded with the demo shipments.
func New(l log.Logger) repository.Repository {
	r := &implRepository{
		shipments: memstore.New(func(s shipment.Shipment) string { return s.ID }),
		l:         l,
	}
	r.shipments.Seed(SeedShipments())
	return r
}
