package repository

import (
	"context"

	"nexstock/internal/supplier"
)

//go:generate mockery --name Repository
type Repository interface {
	CreateSupplier(ctx context.Context, s supplier.Supplier) (supplier.Supplier, error)
	// GetOneSupplier returns a zero-value Supplier when the id is unknown.
	GetOneSupplier(ctx context.Context, id string) (supplier.Supplier, error)
	ListSuppliers(ctx context.Context, opt ListOptions) ([]supplier.Supplier, error)
	UpdateSupplier(ctx context.Context, s supplier.Supplier) (supplier.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
}

type ListOptions struct {
	Search   string
	Category string
	Status   supplier.Status
}
