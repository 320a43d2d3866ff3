package usecase

import (
	"nexstock/internal/warehouse"
	"nexstock/internal/warehouse/repository"
	"nexstock/pkg/log"
)

type implUseCase struct {
	repo  repository.Repository
	items warehouse.ItemSource
	l     log.Logger
}

// New creates a new warehouse UseCase.
func New(repo repository.Repository, items warehouse.ItemSource, l log.Logger) warehouse.UseCase {
	return &implUseCase{
		repo:  repo,
		items: items,
		l:     l,
	}
}
