package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"nexstock/internal/catalog"
	repo "nexstock/internal/catalog/repository"
)

const pqUniqueViolation = "23505"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (catalog.Item, error) {
	var item catalog.Item
	err := row.Scan(
		&item.ID, &item.Name, &item.Category, &item.SKU, &item.Price, &item.Stock, &item.MinStock,
		&item.Supplier, &item.Location, &item.WarehouseID, &item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}

// CreateItem inserts a new product row and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (catalog.Item, error) {
	now := time.Now().UTC()
	query, args, err := r.dialect.Insert(tableProducts).
		Prepared(true).
		Rows(goqu.Record{
			"id":           uuid.NewString(),
			"name":         opt.Name,
			"category":     opt.Category,
			"sku":          opt.SKU,
			"price":        opt.Price,
			"stock":        opt.Stock,
			"min_stock":    opt.MinStock,
			"supplier":     opt.Supplier,
			"location":     opt.Location,
			"warehouse_id": opt.WarehouseID,
			"created_at":   now,
			"updated_at":   now,
		}).
		Returning(itemColumns...).
		ToSQL()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("CreateItem"), err)
		return catalog.Item{}, repo.ErrFailedToInsert
	}

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return catalog.Item{}, catalog.ErrDuplicateSKU
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return catalog.Item{}, repo.ErrFailedToInsert
	}
	return item, nil
}

// GetOneItem retrieves a single product. Returns a zero-value Item when not found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (catalog.Item, error) {
	query, args, err := r.buildGetOneQuery(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("GetOneItem"), err)
		return catalog.Item{}, repo.ErrFailedToGet
	}

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return catalog.Item{}, repo.ErrFailedToGet
	}
	return item, nil
}

// ListItems returns a page of products and the total count.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]catalog.Item, int, error) {
	countQuery, countArgs, err := r.buildCountQuery(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s build count: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query, args, err := r.buildListQuery(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	items := make([]catalog.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, 0, repo.ErrFailedToList
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return items, total, nil
}

// UpdateItem overwrites a product row. Returns a zero-value Item when not found.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (catalog.Item, error) {
	query, args, err := r.dialect.Update(tableProducts).
		Prepared(true).
		Set(goqu.Record{
			"name":         opt.Name,
			"category":     opt.Category,
			"sku":          opt.SKU,
			"price":        opt.Price,
			"stock":        opt.Stock,
			"min_stock":    opt.MinStock,
			"supplier":     opt.Supplier,
			"location":     opt.Location,
			"warehouse_id": opt.WarehouseID,
			"updated_at":   time.Now().UTC(),
		}).
		Where(goqu.C("id").Eq(opt.ID)).
		Returning(itemColumns...).
		ToSQL()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("UpdateItem"), err)
		return catalog.Item{}, repo.ErrFailedToUpdate
	}

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Item{}, nil
	}
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return catalog.Item{}, catalog.ErrDuplicateSKU
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return catalog.Item{}, repo.ErrFailedToUpdate
	}
	return item, nil
}

// DeleteItem removes a product row by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	query, args, err := r.dialect.Delete(tableProducts).
		Prepared(true).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
