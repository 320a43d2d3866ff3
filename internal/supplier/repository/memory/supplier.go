package memory

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"nexstock/internal/supplier"
	repo "nexstock/internal/supplier/repository"
	"nexstock/pkg/memstore"
)

func (r *implRepository) CreateSupplier(ctx context.Context, s supplier.Supplier) (supplier.Supplier, error) {
	s.ID = uuid.NewString()
	if err := r.suppliers.Insert(s); err != nil {
		r.l.Errorf(ctx, "supplier/repository/memory.CreateSupplier: %v", err)
		return supplier.Supplier{}, repo.ErrFailedToInsert
	}
	return s, nil
}

func (r *implRepository) GetOneSupplier(ctx context.Context, id string) (supplier.Supplier, error) {
	s, _ := r.suppliers.Get(id)
	return s, nil
}

// ListSuppliers matches search against name and category.
func (r *implRepository) ListSuppliers(ctx context.Context, opt repo.ListOptions) ([]supplier.Supplier, error) {
	search := strings.ToLower(strings.TrimSpace(opt.Search))
	return r.suppliers.List(func(s supplier.Supplier) bool {
		if opt.Status != "" && s.Status != opt.Status {
			return false
		}
		if opt.Category != "" && s.Category != opt.Category {
			return false
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(s.Name), search) &&
			!strings.Contains(strings.ToLower(s.Category), search) {
			return false
		}
		return true
	}), nil
}

func (r *implRepository) UpdateSupplier(ctx context.Context, s supplier.Supplier) (supplier.Supplier, error) {
	updated, err := r.suppliers.Update(s.ID, func(supplier.Supplier) (supplier.Supplier, error) {
		return s, nil
	})
	if errors.Is(err, memstore.ErrNotFound) {
		return supplier.Supplier{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "supplier/repository/memory.UpdateSupplier: %v", err)
		return supplier.Supplier{}, repo.ErrFailedToUpdate
	}
	return updated, nil
}

func (r *implRepository) DeleteSupplier(ctx context.Context, id string) error {
	if err := r.suppliers.Delete(id); err != nil && !errors.Is(err, memstore.ErrNotFound) {
		r.l.Errorf(ctx, "supplier/repository/memory.DeleteSupplier: %v", err)
		return repo.ErrFailedToDelete
	}
	return nil
}
