package model

// StockStatus labels an item relative to its reorder threshold.
type StockStatus string

const (
	StockStatusLow StockStatus = "Low Stock"
	StockStatusIn  StockStatus = "In Stock"
)

// StockStatusOf returns StockStatusLow when stock is strictly below minStock.
func StockStatusOf(stock, minStock int) StockStatus {
	if stock < minStock {
		return StockStatusLow
	}
	return StockStatusIn
}
