package usecase

import (
	"context"

	"nexstock/internal/report"
)

// Dashboard returns the headline inventory figures with the sales and category charts.
func (uc *implUseCase) Dashboard(ctx context.Context) (report.DashboardOutput, error) {
	items, err := uc.items.Snapshot(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Dashboard Snapshot: %v", err)
		return report.DashboardOutput{}, err
	}
	sales, err := uc.repo.ListSales(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Dashboard ListSales: %v", err)
		return report.DashboardOutput{}, err
	}
	categories, err := uc.repo.ListCategories(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Dashboard ListCategories: %v", err)
		return report.DashboardOutput{}, err
	}

	return report.DashboardOutput{
		TotalProducts: len(items),
		TotalStock:    report.TotalStock(items),
		LowStockCount: len(report.LowStock(items)),
		TotalValue:    report.TotalValue(items),
		Sales:         sales,
		Categories:    categories,
	}, nil
}

// Inventory returns stock value totals, low-stock items and value per category.
func (uc *implUseCase) Inventory(ctx context.Context) (report.InventoryOutput, error) {
	items, err := uc.items.Snapshot(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Inventory Snapshot: %v", err)
		return report.InventoryOutput{}, err
	}
	categories, err := uc.repo.ListCategories(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Inventory ListCategories: %v", err)
		return report.InventoryOutput{}, err
	}

	order := make([]string, len(categories))
	for i, c := range categories {
		order[i] = c.Name
	}

	return report.InventoryOutput{
		TotalValue:      report.TotalValue(items),
		TotalStock:      report.TotalStock(items),
		LowStockItems:   report.LowStock(items),
		ValueByCategory: report.ValueByCategory(items, order),
	}, nil
}

// Sales returns revenue totals and the profit/expense split of the sales series.
func (uc *implUseCase) Sales(ctx context.Context) (report.SalesOutput, error) {
	sales, err := uc.repo.ListSales(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Sales ListSales: %v", err)
		return report.SalesOutput{}, err
	}
	return report.SummarizeSales(sales), nil
}
