package catalog

import "strings"

// Stock status values accepted in FilterCriteria.StockStatus.
const (
	StockStatusLow = "low"
	StockStatusIn  = "in"
)

// Normalize trims every field and drops blank ones, so "" behaves like absent.
func (f FilterCriteria) Normalize() FilterCriteria {
	return FilterCriteria{
		Category:    trimmedOrNil(f.Category),
		Name:        trimmedOrNil(f.Name),
		StockStatus: trimmedOrNil(f.StockStatus),
	}
}

// Match returns the items selected by f, conditions combined with AND:
// category by case-insensitive equality, name by case-insensitive substring,
// and stock status "low" (stock < minStock) or "in" (stock >= minStock).
// Unrecognized stock status values are ignored. A nil or empty filter selects
// nothing.
func Match(items []Item, f *FilterCriteria) []Item {
	if f == nil {
		return []Item{}
	}
	norm := f.Normalize()
	if norm.IsEmpty() {
		return []Item{}
	}

	wantLow, applyStock := parseStockStatus(norm.StockStatus)

	matches := make([]Item, 0)
	for _, item := range items {
		if norm.Category != nil && !strings.EqualFold(item.Category, *norm.Category) {
			continue
		}
		if norm.Name != nil && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(*norm.Name)) {
			continue
		}
		if applyStock && item.IsLowStock() != wantLow {
			continue
		}
		matches = append(matches, item)
	}
	return matches
}

// IDs returns the identifiers of items in order.
func IDs(items []Item) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func parseStockStatus(s *string) (wantLow bool, ok bool) {
	if s == nil {
		return false, false
	}
	switch strings.ToLower(*s) {
	case StockStatusLow, "low stock", "low_stock":
		return true, true
	case StockStatusIn, "in stock", "in_stock", "ok", "normal":
		return false, true
	default:
		return false, false
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
