package usecase

import (
	"context"
	"strings"

	"nexstock/internal/catalog"
	repo "nexstock/internal/catalog/repository"
)

// Create adds a product to the front of the catalog.
func (uc *implUseCase) Create(ctx context.Context, input catalog.CreateItemInput) (catalog.CreateItemOutput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.SKU = strings.TrimSpace(input.SKU)

	if err := uc.validate(ctx, input.Name, input.Price, input.Stock, input.MinStock, input.WarehouseID); err != nil {
		return catalog.CreateItemOutput{}, err
	}
	if err := uc.ensureUniqueSKU(ctx, input.SKU, ""); err != nil {
		return catalog.CreateItemOutput{}, err
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:        input.Name,
		Category:    strings.TrimSpace(input.Category),
		SKU:         input.SKU,
		Price:       input.Price,
		Stock:       input.Stock,
		MinStock:    input.MinStock,
		Supplier:    input.Supplier,
		Location:    input.Location,
		WarehouseID: input.WarehouseID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return catalog.CreateItemOutput{}, err
	}

	return catalog.CreateItemOutput{Item: item}, nil
}
