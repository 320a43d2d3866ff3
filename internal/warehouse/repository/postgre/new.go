package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"nexstock/internal/warehouse"
	repo "nexstock/internal/warehouse/repository"
	"nexstock/pkg/log"
)

const tableWarehouses = "warehouses"

type implRepository struct {
	db      *sql.DB
	dialect goqu.DialectWrapper
	l       log.Logger
}

// New creates a new PostgreSQL-backed warehouse Repository.
func New(db *sql.DB, l log.Logger) repo.Repository {
	if db == nil {
		panic("warehouse/repository/postgre: db is required")
	}
	return &implRepository{db: db, dialect: goqu.Dialect("postgres"), l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("warehouse/repository/postgre.%s", method)
}

func (r *implRepository) selectQuery() *goqu.SelectDataset {
	return r.dialect.From(tableWarehouses).
		Prepared(true).
		Select("id", "name", "capacity", "used", "temperature").
		Order(goqu.C("id").Asc())
}

func scanWarehouse(row interface{ Scan(...any) error }) (warehouse.Warehouse, error) {
	var (
		w    warehouse.Warehouse
		temp sql.NullFloat64
	)
	if err := row.Scan(&w.ID, &w.Name, &w.Capacity, &w.Used, &temp); err != nil {
		return warehouse.Warehouse{}, err
	}
	if temp.Valid {
		w.Temperature = &temp.Float64
	}
	return w, nil
}

func (r *implRepository) ListWarehouses(ctx context.Context) ([]warehouse.Warehouse, error) {
	query, args, err := r.selectQuery().ToSQL()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("ListWarehouses"), err)
		return nil, repo.ErrFailedToList
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListWarehouses"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	out := make([]warehouse.Warehouse, 0)
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListWarehouses"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *implRepository) GetOneWarehouse(ctx context.Context, id string) (warehouse.Warehouse, error) {
	query, args, err := r.selectQuery().Where(goqu.C("id").Eq(id)).Limit(1).ToSQL()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("GetOneWarehouse"), err)
		return warehouse.Warehouse{}, repo.ErrFailedToGet
	}

	w, err := scanWarehouse(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return warehouse.Warehouse{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneWarehouse"), err)
		return warehouse.Warehouse{}, repo.ErrFailedToGet
	}
	return w, nil
}

func (r *implRepository) Exists(ctx context.Context, id string) (bool, error) {
	w, err := r.GetOneWarehouse(ctx, id)
	if err != nil {
		return false, err
	}
	return w.ID != "", nil
}
