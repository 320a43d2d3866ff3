package usecase

import (
	"nexstock/internal/catalog"
	"nexstock/internal/catalog/repository"
	"nexstock/pkg/log"
)

// implUseCase is the private implementation of catalog.UseCase.
type implUseCase struct {
	repo       repository.Repository
	warehouses catalog.WarehouseChecker
	l          log.Logger
}

// New creates a new catalog UseCase. warehouses may be nil, in which case
// warehouse references are not checked.
func New(repo repository.Repository, warehouses catalog.WarehouseChecker, l log.Logger) catalog.UseCase {
	return &implUseCase{
		repo:       repo,
		warehouses: warehouses,
		l:          l,
	}
}
