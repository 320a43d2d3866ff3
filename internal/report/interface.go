package report

import (
	"context"

	"nexstock/internal/catalog"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Dashboard(ctx context.Context) (DashboardOutput, error)
	Inventory(ctx context.Context) (InventoryOutput, error)
	Sales(ctx context.Context) (SalesOutput, error)
	ExportInventory(ctx context.Context) (ExportOutput, error)
}

// ItemSource provides the current catalog.
type ItemSource interface {
	Snapshot(ctx context.Context) ([]catalog.Item, error)
}
