package usecase

import (
	"context"

	"nexstock/internal/catalog"
	repo "nexstock/internal/catalog/repository"
)

// coalesce returns *newVal when set, otherwise the existing value.
func coalesce[T any](newVal *T, existing T) T {
	if newVal != nil {
		return *newVal
	}
	return existing
}

func (uc *implUseCase) validate(ctx context.Context, name string, price float64, stock, minStock int, warehouseID string) error {
	if name == "" {
		return catalog.ErrInvalidPayload
	}
	if price < 0 || stock < 0 || minStock < 0 {
		return catalog.ErrNegativeQuantity
	}
	if warehouseID == "" || uc.warehouses == nil {
		return nil
	}

	ok, err := uc.warehouses.Exists(ctx, warehouseID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.validate warehouses.Exists: %v", err)
		return err
	}
	if !ok {
		return catalog.ErrWarehouseNotFound
	}
	return nil
}

// ensureUniqueSKU rejects sku when another item (not exceptID) already uses it.
// An empty sku is never checked.
func (uc *implUseCase) ensureUniqueSKU(ctx context.Context, sku, exceptID string) error {
	if sku == "" {
		return nil
	}
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{SKU: sku})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ensureUniqueSKU GetOneItem: %v", err)
		return err
	}
	if existing.ID != "" && existing.ID != exceptID {
		return catalog.ErrDuplicateSKU
	}
	return nil
}
