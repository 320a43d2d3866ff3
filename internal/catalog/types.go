package catalog

import "time"

// --- Domain Model ---

// Item is a product held in exactly one warehouse.
type Item struct {
	ID          string
	Name        string
	Category    string
	SKU         string
	Price       float64
	Stock       int
	MinStock    int
	Supplier    string
	Location    string
	WarehouseID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock reports whether stock is strictly below the reorder threshold.
func (i Item) IsLowStock() bool {
	return i.Stock < i.MinStock
}

// FilterCriteria is a sparse set of match conditions. Nil fields are not applied.
type FilterCriteria struct {
	Category    *string `json:"category,omitempty"`
	Name        *string `json:"name,omitempty"`
	StockStatus *string `json:"stockStatus,omitempty"`
}

// IsEmpty reports whether no condition is set.
func (f FilterCriteria) IsEmpty() bool {
	return f.Category == nil && f.Name == nil && f.StockStatus == nil
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name        string
	Category    string
	SKU         string
	Price       float64
	Stock       int
	MinStock    int
	Supplier    string
	Location    string
	WarehouseID string
}

type ListItemsInput struct {
	Search      string
	Category    string
	WarehouseID string
	LowStock    bool
	IDs         []string
	Limit       int
	Offset      int
}

// UpdateItemInput is a partial update; nil fields keep their current value.
type UpdateItemInput struct {
	ID          string
	Name        *string
	Category    *string
	SKU         *string
	Price       *float64
	Stock       *int
	MinStock    *int
	Supplier    *string
	Location    *string
	WarehouseID *string
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items  []Item
	Total  int
	Limit  int
	Offset int
}

type DetailItemOutput struct {
	Item Item
}

type UpdateItemOutput struct {
	Item Item
}
