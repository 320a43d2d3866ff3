package memory

import (
	"time"

	"nexstock/internal/catalog"
	"nexstock/internal/catalog/repository"
	"nexstock/pkg/log"
	"nexstock/pkg/memstore"
)

type implRepository struct {
	items *memstore.Store[catalog.Item]
	l     log.Logger
	now   func() time.Time
}

// New creates an in-memory catalog Repository. When seed is true the store
// starts with the demo catalog.
func New(l log.Logger, seed bool) repository.Repository {
	r := &implRepository{
		items: memstore.New(func(i catalog.Item) string { return i.ID }),
		l:     l,
		now:   time.Now,
	}
	if seed {
		r.items.Seed(SeedItems())
	}
	return r
}
