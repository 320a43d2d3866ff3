package warehouse

import (
	"context"

	"nexstock/internal/catalog"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// ItemSource provides the current catalog.
type ItemSource interface {
	Snapshot(ctx context.Context) ([]catalog.Item, error)
}
