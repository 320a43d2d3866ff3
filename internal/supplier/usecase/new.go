package usecase

import (
	"time"

	"nexstock/internal/supplier"
	"nexstock/internal/supplier/repository"
	"nexstock/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	now  func() time.Time
}

// New creates a new supplier UseCase.
func New(repo repository.Repository, l log.Logger) supplier.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
}
