package usecase

import (
	"time"

	"nexstock/internal/staff"
	"nexstock/internal/staff/repository"
	"nexstock/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	now  func() time.Time
}

// New creates a new staff UseCase covering members and their tasks.
func New(repo repository.Repository, l log.Logger) staff.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
}
