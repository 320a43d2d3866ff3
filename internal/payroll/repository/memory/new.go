package memory

import (
	"nexstock/internal/payroll"
	"nexstock/internal/payroll/repository"
	"nexstock/pkg/log"
	"nexstock/pkg/memstore"
)

type implRepository struct {
	records *memstore.Store[payroll.Record]
	l       log.Logger
}

// New creates an in-memory payroll Repository seeded with two months of demo records.
func New(l log.Logger) repository.Repository {
	r := &implRepository{
		records: memstore.New(func(rec payroll.Record) string { return rec.ID }),
		l:       l,
	}
	r.records.Seed(SeedRecords())
	return r
}
