package memory

import (
	"context"

	"nexstock/internal/warehouse"
	"nexstock/internal/warehouse/repository"
	"nexstock/pkg/memstore"
)

type implRepository struct {
	warehouses *memstore.Store[warehouse.Warehouse]
}

// New creates an in-memory warehouse Repository seeded with the demo sites.
func New() repository.Repository {
	r := &implRepository{
		warehouses: memstore.New(func(w warehouse.Warehouse) string { return w.ID }),
	}
	r.warehouses.Seed(SeedWarehouses())
	return r
}

func (r *implRepository) ListWarehouses(ctx context.Context) ([]warehouse.Warehouse, error) {
	return r.warehouses.List(nil), nil
}

func (r *implRepository) GetOneWarehouse(ctx context.Context, id string) (warehouse.Warehouse, error) {
	w, _ := r.warehouses.Get(id)
	return w, nil
}

func (r *implRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.warehouses.Get(id)
	return ok, nil
}
