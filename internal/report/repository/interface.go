package repository

import (
	"context"

	"nexstock/internal/report"
)

// Repository supplies the sales history and category distribution reports are built from.
type Repository interface {
	ListSales(ctx context.Context) ([]report.SalesPoint, error)
	ListCategories(ctx context.Context) ([]report.CategorySlice, error)
}
