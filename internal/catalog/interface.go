package catalog

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	List(ctx context.Context, input ListItemsInput) (ListItemsOutput, error)
	Detail(ctx context.Context, id string) (DetailItemOutput, error)
	Update(ctx context.Context, input UpdateItemInput) (UpdateItemOutput, error)
	Delete(ctx context.Context, id string) error

	// Snapshot returns every item in listing order. Callers must treat it as read-only.
	Snapshot(ctx context.Context) ([]Item, error)
}

// WarehouseChecker verifies that a warehouse id refers to a known warehouse.
type WarehouseChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}
