package memory

import (
	"nexstock/internal/staff"
	"nexstock/internal/staff/repository"
	"nexstock/pkg/log"
	"nexstock/pkg/memstore"
)

type implRepository struct {
	members *memstore.Store[staff.Member]
	tasks   *memstore.Store[staff.Task]
	l       log.Logger
}

// New creates an in-memory staff Repository seeded with the demo team and tasks.
func New(l log.Logger) repository.Repository {
	r := &implRepository{
		members: memstore.New(func(m staff.Member) string { return m.ID }),
		tasks:   memstore.New(func(t staff.Task) string { return t.ID }),
		l:       l,
	}
	r.members.Seed(SeedMembers())
	r.tasks.Seed(SeedTasks())
	return r
}
