package usecase

import (
	"context"

	"nexstock/internal/catalog"
	repo "nexstock/internal/catalog/repository"
)

// List returns a page of products, newest first.
func (uc *implUseCase) List(ctx context.Context, input catalog.ListItemsInput) (catalog.ListItemsOutput, error) {
	items, total, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		Search:      input.Search,
		Category:    input.Category,
		WarehouseID: input.WarehouseID,
		LowStock:    input.LowStock,
		IDs:         input.IDs,
		Limit:       input.Limit,
		Offset:      input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return catalog.ListItemsOutput{}, err
	}

	return catalog.ListItemsOutput{
		Items:  items,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// Snapshot returns the whole catalog in listing order.
func (uc *implUseCase) Snapshot(ctx context.Context) ([]catalog.Item, error) {
	items, _, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Snapshot ListItems: %v", err)
		return nil, err
	}
	return items, nil
}
