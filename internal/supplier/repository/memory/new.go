package memory

import (
	"nexstock/internal/supplier"
	"nexstock/internal/supplier/repository"
	"nexstock/pkg/log"
	"nexstock/pkg/memstore"
)

type implRepository struct {
	suppliers *memstore.Store[supplier.Supplier]
	l         log.Logger
}

// New creates an in-memory supplier Repository seeded with the demo suppliers.
func New(l log.Logger) repository.Repository {
	r := &implRepository{
		suppliers: memstore.New(func(s supplier.Supplier) string { return s.ID }),
		l:         l,
	}
	r.suppliers.Seed(SeedSuppliers())
	return r
}
