package memory

import (
	"time"

	"nexstock/internal/catalog"
)

var seededAt = time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

// SeedItems returns the demo catalog in listing order.
func SeedItems() []catalog.Item {
	items := []catalog.Item{
		{ID: "1", Name: "Wireless Headphones", Category: "Electronics", SKU: "WH-001", Price: 129.99, Stock: 45, MinStock: 20, Supplier: "TechSply", Location: "A-12", WarehouseID: "WH-NY"},
		{ID: "2", Name: "Ergonomic Chair", Category: "Furniture", SKU: "EC-500", Price: 249.50, Stock: 12, MinStock: 15, Supplier: "OfficeLux", Location: "W-03", WarehouseID: "WH-CA"},
		{ID: "3", Name: "Mechanical Keyboard", Category: "Electronics", SKU: "MK-101", Price: 89.99, Stock: 110, MinStock: 30, Supplier: "KeyMaster", Location: "A-15", WarehouseID: "WH-TX"},
		{ID: "4", Name: `4K Monitor 27"`, Category: "Electronics", SKU: "MN-4K27", Price: 399.00, Stock: 8, MinStock: 10, Supplier: "VisionInc", Location: "A-02", WarehouseID: "WH-NY"},
		{ID: "5", Name: "Standing Desk", Category: "Furniture", SKU: "SD-200", Price: 450.00, Stock: 5, MinStock: 5, Supplier: "OfficeLux", Location: "W-01", WarehouseID: "WH-CA"},
		{ID: "6", Name: "USB-C Dock", Category: "Accessories", SKU: "USB-D1", Price: 75.00, Stock: 85, MinStock: 25, Supplier: "ConnectAll", Location: "B-09", WarehouseID: "WH-TX"},
		{ID: "7", Name: "Webcam 1080p", Category: "Electronics", SKU: "WC-1080", Price: 59.99, Stock: 32, MinStock: 15, Supplier: "VisionInc", Location: "A-08", WarehouseID: "WH-NY"},
		{ID: "8", Name: "Laptop Stand", Category: "Accessories", SKU: "LS-ALU", Price: 29.99, Stock: 200, MinStock: 50, Supplier: "AluWorks", Location: "B-02", WarehouseID: "WH-CA"},
		{ID: "9", Name: "Noise Cancelling Mic", Category: "Electronics", SKU: "NC-MIC", Price: 110.00, Stock: 18, MinStock: 20, Supplier: "SoundPro", Location: "A-22", WarehouseID: "WH-TX"},
		{ID: "10", Name: "Smart Light Strip", Category: "Home", SKU: "SL-RGB", Price: 35.00, Stock: 150, MinStock: 40, Supplier: "Lumina", Location: "C-05", WarehouseID: "WH-NY"},
	}
	for i := range items {
		items[i].CreatedAt = seededAt
		items[i].UpdatedAt = seededAt
	}
	return items
}
