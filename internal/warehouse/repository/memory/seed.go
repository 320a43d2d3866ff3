package memory

import "nexstock/internal/warehouse"

func celsius(v float64) *float64 { return &v }

// SeedWarehouses returns the demo warehouses.
func SeedWarehouses() []warehouse.Warehouse {
	return []warehouse.Warehouse{
		{ID: "WH-NY", Name: "New York Central", Capacity: 5000, Used: 3200, Temperature: celsius(22)},
		{ID: "WH-CA", Name: "California West", Capacity: 8000, Used: 7100, Temperature: celsius(24)},
		{ID: "WH-TX", Name: "Texas Hub", Capacity: 6000, Used: 2500, Temperature: celsius(26)},
	}
}
