package usecase

import (
	"time"

	"nexstock/internal/payroll"
	"nexstock/internal/payroll/repository"
	"nexstock/internal/staff"
	"nexstock/pkg/log"
)

type implUseCase struct {
	repo  repository.Repository
	staff staff.Directory
	l     log.Logger
	now   func() time.Time
}

// New creates a new payroll UseCase. Members are resolved through directory.
func New(repo repository.Repository, directory staff.Directory, l log.Logger) payroll.UseCase {
	return &implUseCase{
		repo:  repo,
		staff: directory,
		l:     l,
		now:   time.Now,
	}
}
