package repository

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
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

// GetOneItemOptions holds filter parameters for fetching a single Item.
// All non-empty fields are applied as AND conditions.
type GetOneItemOptions struct {
	ID  string
	SKU string
}

// ListItemsOptions holds filter and pagination parameters for listing Items.
// Search matches name, SKU or category case-insensitively. A non-positive
// Limit returns every matching row.
type ListItemsOptions struct {
	Search      string
	Category    string
	WarehouseID string
	LowStock    bool
	IDs         []string
	Limit       int
	Offset      int
}

// UpdateItemOptions carries the full replacement state of an Item.
type UpdateItemOptions struct {
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
}
