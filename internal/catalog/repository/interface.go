package repository

import (
	"context"

	"nexstock/internal/catalog"
)

// Repository is the composed interface for the catalog data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines data access for catalog items.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (catalog.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (catalog.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]catalog.Item, int, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (catalog.Item, error)
	DeleteItem(ctx context.Context, id string) error
}
