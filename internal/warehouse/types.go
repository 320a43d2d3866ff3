package warehouse

import (
	"math"

	"github.com/shopspring/decimal"

	"nexstock/internal/catalog"
)

// HighLoadThreshold is the utilization percent above which a warehouse is flagged.
const HighLoadThreshold = 80

// Warehouse is a storage site. Temperature is nil when no sensor is reporting.
type Warehouse struct {
	ID          string
	Name        string
	Capacity    int
	Used        int
	Temperature *float64
}

// Utilization returns used/capacity as a whole percent. Zero capacity yields 0.
func (w Warehouse) Utilization() int {
	if w.Capacity <= 0 {
		return 0
	}
	return int(math.Round(float64(w.Used) / float64(w.Capacity) * 100))
}

// Free returns the remaining capacity, never negative.
func (w Warehouse) Free() int {
	return max(w.Capacity-w.Used, 0)
}

// IsHighLoad reports whether utilization exceeds HighLoadThreshold.
func (w Warehouse) IsHighLoad() bool {
	return w.Utilization() > HighLoadThreshold
}

// --- UseCase Outputs ---

type Summary struct {
	Warehouse    Warehouse
	ProductCount int
}

type ListOutput struct {
	Warehouses     []Summary
	TotalCapacity  int
	TotalUsed      int
	AvgTemperature *float64
}

type DetailOutput struct {
	Warehouse     Warehouse
	Products      []catalog.Item
	TotalValue    decimal.Decimal
	LowStockCount int
}
