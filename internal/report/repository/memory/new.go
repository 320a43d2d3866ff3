package memory

import (
	"context"
	"slices"

	"github.com/shopspring/decimal"

	"nexstock/internal/report"
	"nexstock/internal/report/repository"
)

type implRepository struct {
	sales      []report.SalesPoint
	categories []report.CategorySlice
}

// New creates an in-memory report Repository holding the demo weekly series.
func New() repository.Repository {
	return &implRepository{
		sales:      SeedSales(),
		categories: SeedCategories(),
	}
}

func (r *implRepository) ListSales(ctx context.Context) ([]report.SalesPoint, error) {
	return slices.Clone(r.sales), nil
}

func (r *implRepository) ListCategories(ctx context.Context) ([]report.CategorySlice, error) {
	return slices.Clone(r.categories), nil
}

// SeedSales returns the demo week of sales, Monday first.
func SeedSales() []report.SalesPoint {
	point := func(label string, revenue int64, orders int) report.SalesPoint {
		return report.SalesPoint{Label: label, Revenue: decimal.NewFromInt(revenue), Orders: orders}
	}
	return []report.SalesPoint{
		point("Mon", 4000, 24),
		point("Tue", 3000, 18),
		point("Wed", 2000, 15),
		point("Thu", 2780, 20),
		point("Fri", 1890, 12),
		point("Sat", 2390, 19),
		point("Sun", 3490, 28),
	}
}

// SeedCategories returns the category distribution with chart colors.
func SeedCategories() []report.CategorySlice {
	return []report.CategorySlice{
		{Name: "Electronics", Value: 400, Color: "#6366f1"},
		{Name: "Furniture", Value: 300, Color: "#8b5cf6"},
		{Name: "Accessories", Value: 300, Color: "#ec4899"},
		{Name: "Home", Value: 200, Color: "#10b981"},
	}
}
