package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"nexstock/internal/catalog"
	"nexstock/internal/warehouse"
)

// List returns every warehouse with its product count and fleet totals.
func (uc *implUseCase) List(ctx context.Context) (warehouse.ListOutput, error) {
	warehouses, err := uc.repo.ListWarehouses(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListWarehouses: %v", err)
		return warehouse.ListOutput{}, err
	}
	items, err := uc.items.Snapshot(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List Snapshot: %v", err)
		return warehouse.ListOutput{}, err
	}

	counts := make(map[string]int, len(warehouses))
	for _, item := range items {
		counts[item.WarehouseID]++
	}

	out := warehouse.ListOutput{Warehouses: make([]warehouse.Summary, 0, len(warehouses))}
	var (
		tempSum   float64
		tempCount int
	)
	for _, w := range warehouses {
		out.Warehouses = append(out.Warehouses, warehouse.Summary{Warehouse: w, ProductCount: counts[w.ID]})
		out.TotalCapacity += w.Capacity
		out.TotalUsed += w.Used
		if w.Temperature != nil {
			tempSum += *w.Temperature
			tempCount++
		}
	}
	if tempCount > 0 {
		avg := tempSum / float64(tempCount)
		out.AvgTemperature = &avg
	}
	return out, nil
}

// Detail returns a warehouse with the products stored in it.
func (uc *implUseCase) Detail(ctx context.Context, id string) (warehouse.DetailOutput, error) {
	w, err := uc.repo.GetOneWarehouse(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneWarehouse: %v", err)
		return warehouse.DetailOutput{}, err
	}
	if w.ID == "" {
		return warehouse.DetailOutput{}, warehouse.ErrWarehouseNotFound
	}

	items, err := uc.items.Snapshot(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail Snapshot: %v", err)
		return warehouse.DetailOutput{}, err
	}

	out := warehouse.DetailOutput{Warehouse: w, Products: make([]catalog.Item, 0)}
	for _, item := range items {
		if item.WarehouseID != w.ID {
			continue
		}
		out.Products = append(out.Products, item)
		out.TotalValue = out.TotalValue.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Stock))))
		if item.IsLowStock() {
			out.LowStockCount++
		}
	}
	return out, nil
}

// Exists reports whether id names a known warehouse.
func (uc *implUseCase) Exists(ctx context.Context, id string) (bool, error) {
	return uc.repo.Exists(ctx, id)
}
