package postgre

import (
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	repo "nexstock/internal/catalog/repository"
)

var itemColumns = []any{
	"id", "name", "category", "sku", "price", "stock", "min_stock",
	"supplier", "location", "warehouse_id", "created_at", "updated_at",
}

// buildGetOneQuery builds the SELECT for GetOneItem.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneItemOptions) (string, []any, error) {
	var conds []exp.Expression
	if opt.ID != "" {
		conds = append(conds, goqu.C("id").Eq(opt.ID))
	}
	if opt.SKU != "" {
		conds = append(conds, goqu.Func("LOWER", goqu.C("sku")).Eq(strings.ToLower(opt.SKU)))
	}
	return r.dialect.From(tableProducts).
		Prepared(true).
		Select(itemColumns...).
		Where(conds...).
		Limit(1).
		ToSQL()
}

// listConditions translates ListItemsOptions into WHERE expressions.
func (r *implRepository) listConditions(opt repo.ListItemsOptions) []exp.Expression {
	var conds []exp.Expression
	if opt.Category != "" {
		conds = append(conds, goqu.Func("LOWER", goqu.C("category")).Eq(strings.ToLower(opt.Category)))
	}
	if opt.WarehouseID != "" {
		conds = append(conds, goqu.C("warehouse_id").Eq(opt.WarehouseID))
	}
	if opt.LowStock {
		conds = append(conds, goqu.L(`"stock" < "min_stock"`))
	}
	if len(opt.IDs) > 0 {
		conds = append(conds, goqu.C("id").In(opt.IDs))
	}
	if s := strings.TrimSpace(opt.Search); s != "" {
		pattern := fmt.Sprintf("%%%s%%", s)
		conds = append(conds, goqu.Or(
			goqu.C("name").ILike(pattern),
			goqu.C("sku").ILike(pattern),
			goqu.C("category").ILike(pattern),
		))
	}
	return conds
}

// buildCountQuery builds the COUNT for ListItems (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListItemsOptions) (string, []any, error) {
	return r.dialect.From(tableProducts).
		Prepared(true).
		Select(goqu.COUNT(goqu.Star())).
		Where(r.listConditions(opt)...).
		ToSQL()
}

// buildListQuery builds the page SELECT for ListItems, newest first.
func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) (string, []any, error) {
	ds := r.dialect.From(tableProducts).
		Prepared(true).
		Select(itemColumns...).
		Where(r.listConditions(opt)...).
		Order(goqu.C("created_at").Desc(), goqu.C("seq").Desc())

	if opt.Limit > 0 {
		ds = ds.Limit(uint(opt.Limit))
	}
	if opt.Offset > 0 {
		ds = ds.Offset(uint(opt.Offset))
	}
	return ds.ToSQL()
}
