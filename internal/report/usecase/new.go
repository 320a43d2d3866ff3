package usecase

import (
	"time"

	"nexstock/internal/report"
	"nexstock/internal/report/repository"
	"nexstock/pkg/gsheets"
	"nexstock/pkg/log"
)

type implUseCase struct {
	repo      repository.Repository
	items     report.ItemSource
	sheets    gsheets.Writer
	sheetName string
	l         log.Logger
	now       func() time.Time
}

// New creates the report UseCase. sheets may be nil, which disables ExportInventory.
func New(repo repository.Repository, items report.ItemSource, sheets gsheets.Writer, sheetName string, l log.Logger) report.UseCase {
	if sheetName == "" {
		sheetName = "Inventory"
	}
	return &implUseCase{
		repo:      repo,
		items:     items,
		sheets:    sheets,
		sheetName: sheetName,
		l:         l,
		now:       time.Now,
	}
}
