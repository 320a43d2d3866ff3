package usecase

import (
	"context"
	"strings"

	"nexstock/internal/catalog"
	repo "nexstock/internal/catalog/repository"
)

// Detail retrieves a single product. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (catalog.DetailItemOutput, error) {
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return catalog.DetailItemOutput{}, err
	}
	if item.ID == "" {
		return catalog.DetailItemOutput{}, catalog.ErrItemNotFound
	}
	return catalog.DetailItemOutput{Item: item}, nil
}

// Update applies a partial update. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input catalog.UpdateItemInput) (catalog.UpdateItemOutput, error) {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		return catalog.UpdateItemOutput{}, err
	}
	if existing.ID == "" {
		return catalog.UpdateItemOutput{}, catalog.ErrItemNotFound
	}

	opt := repo.UpdateItemOptions{
		ID:          existing.ID,
		Name:        strings.TrimSpace(coalesce(input.Name, existing.Name)),
		Category:    strings.TrimSpace(coalesce(input.Category, existing.Category)),
		SKU:         strings.TrimSpace(coalesce(input.SKU, existing.SKU)),
		Price:       coalesce(input.Price, existing.Price),
		Stock:       coalesce(input.Stock, existing.Stock),
		MinStock:    coalesce(input.MinStock, existing.MinStock),
		Supplier:    coalesce(input.Supplier, existing.Supplier),
		Location:    coalesce(input.Location, existing.Location),
		WarehouseID: coalesce(input.WarehouseID, existing.WarehouseID),
	}

	// The warehouse reference is only re-checked when the update changes it.
	checkWarehouse := ""
	if input.WarehouseID != nil {
		checkWarehouse = opt.WarehouseID
	}
	if err := uc.validate(ctx, opt.Name, opt.Price, opt.Stock, opt.MinStock, checkWarehouse); err != nil {
		return catalog.UpdateItemOutput{}, err
	}
	if !strings.EqualFold(opt.SKU, existing.SKU) {
		if err := uc.ensureUniqueSKU(ctx, opt.SKU, existing.ID); err != nil {
			return catalog.UpdateItemOutput{}, err
		}
	}

	item, err := uc.repo.UpdateItem(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return catalog.UpdateItemOutput{}, err
	}
	if item.ID == "" {
		return catalog.UpdateItemOutput{}, catalog.ErrItemNotFound
	}
	return catalog.UpdateItemOutput{Item: item}, nil
}

// Delete removes a product. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneItem: %v", err)
		return err
	}
	if existing.ID == "" {
		return catalog.ErrItemNotFound
	}
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}
