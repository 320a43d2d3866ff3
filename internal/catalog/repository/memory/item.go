package memory

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"

	"nexstock/internal/catalog"
	repo "nexstock/internal/catalog/repository"
	"nexstock/pkg/memstore"
)

// CreateItem stores a new Item at the front of the catalog.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (catalog.Item, error) {
	now := r.now()
	item := catalog.Item{
		ID:          uuid.NewString(),
		Name:        opt.Name,
		Category:    opt.Category,
		SKU:         opt.SKU,
		Price:       opt.Price,
		Stock:       opt.Stock,
		MinStock:    opt.MinStock,
		Supplier:    opt.Supplier,
		Location:    opt.Location,
		WarehouseID: opt.WarehouseID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.items.Insert(item); err != nil {
		r.l.Errorf(ctx, "catalog/repository/memory.CreateItem: %v", err)
		return catalog.Item{}, repo.ErrFailedToInsert
	}
	return item, nil
}

// GetOneItem returns a zero-value Item when nothing matches.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (catalog.Item, error) {
	if opt.ID != "" {
		item, ok := r.items.Get(opt.ID)
		if !ok || (opt.SKU != "" && !strings.EqualFold(item.SKU, opt.SKU)) {
			return catalog.Item{}, nil
		}
		return item, nil
	}
	if opt.SKU != "" {
		item, _ := r.items.Find(func(i catalog.Item) bool {
			return strings.EqualFold(i.SKU, opt.SKU)
		})
		return item, nil
	}
	return catalog.Item{}, nil
}

// ListItems returns one page of matching Items and the total match count.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]catalog.Item, int, error) {
	search := strings.ToLower(strings.TrimSpace(opt.Search))
	matches := r.items.List(func(i catalog.Item) bool {
		if opt.Category != "" && !strings.EqualFold(i.Category, opt.Category) {
			return false
		}
		if opt.WarehouseID != "" && i.WarehouseID != opt.WarehouseID {
			return false
		}
		if opt.LowStock && !i.IsLowStock() {
			return false
		}
		if len(opt.IDs) > 0 && !slices.Contains(opt.IDs, i.ID) {
			return false
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(i.Name), search) &&
			!strings.Contains(strings.ToLower(i.SKU), search) &&
			!strings.Contains(strings.ToLower(i.Category), search) {
			return false
		}
		return true
	})
	return memstore.Page(matches, opt.Limit, opt.Offset), len(matches), nil
}

// UpdateItem replaces the mutable fields of an Item. Returns a zero-value Item
// when the id is unknown.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (catalog.Item, error) {
	item, err := r.items.Update(opt.ID, func(i catalog.Item) (catalog.Item, error) {
		i.Name = opt.Name
		i.Category = opt.Category
		i.SKU = opt.SKU
		i.Price = opt.Price
		i.Stock = opt.Stock
		i.MinStock = opt.MinStock
		i.Supplier = opt.Supplier
		i.Location = opt.Location
		i.WarehouseID = opt.WarehouseID
		i.UpdatedAt = r.now()
		return i, nil
	})
	if errors.Is(err, memstore.ErrNotFound) {
		return catalog.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "catalog/repository/memory.UpdateItem: %v", err)
		return catalog.Item{}, repo.ErrFailedToUpdate
	}
	return item, nil
}

// DeleteItem removes an Item. Deleting an unknown id is a no-op.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	if err := r.items.Delete(id); err != nil && !errors.Is(err, memstore.ErrNotFound) {
		r.l.Errorf(ctx, "catalog/repository/memory.DeleteItem: %v", err)
		return repo.ErrFailedToDelete
	}
	return nil
}
