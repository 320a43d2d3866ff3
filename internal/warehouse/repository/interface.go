package repository

import (
	"context"

	"nexstock/internal/warehouse"
)

// Repository is the warehouse data store.
type Repository interface {
	ListWarehouses(ctx context.Context) ([]warehouse.Warehouse, error)
	// GetOneWarehouse returns a zero-value Warehouse when id is unknown.
	GetOneWarehouse(ctx context.Context, id string) (warehouse.Warehouse, error)
	Exists(ctx context.Context, id string) (bool, error)
}
