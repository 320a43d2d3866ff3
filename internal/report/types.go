package report

import (
	"github.com/shopspring/decimal"

	"nexstock/internal/catalog"
)

var (
	// GrossMarginRate is the share of revenue reported as gross profit.
	GrossMarginRate = decimal.RequireFromString("0.42")
	// ProfitShare and ExpenseShare split each day's revenue in the profit series.
	ProfitShare  = decimal.RequireFromString("0.40")
	ExpenseShare = decimal.RequireFromString("0.60")
)

// SalesPoint is one bucket of the sales series.
type SalesPoint struct {
	Label   string
	Revenue decimal.Decimal
	Orders  int
}

// CategorySlice is one entry of the category distribution chart.
type CategorySlice struct {
	Name  string
	Value int
	Color string
}

// CategoryValue is the stock value held in one category.
type CategoryValue struct {
	Name  string
	Value decimal.Decimal
}

// ProfitPoint is a SalesPoint split into profit and expenses.
type ProfitPoint struct {
	SalesPoint
	Profit   decimal.Decimal
	Expenses decimal.Decimal
}

// --- UseCase Outputs ---

type DashboardOutput struct {
	TotalProducts int
	TotalStock    int
	LowStockCount int
	TotalValue    decimal.Decimal
	Sales         []SalesPoint
	Categories    []CategorySlice
}

type InventoryOutput struct {
	TotalValue      decimal.Decimal
	TotalStock      int
	LowStockItems   []catalog.Item
	ValueByCategory []CategoryValue
}

type SalesOutput struct {
	TotalRevenue  decimal.Decimal
	TotalOrders   int
	AvgOrderValue decimal.Decimal
	GrossProfit   decimal.Decimal
	Series        []ProfitPoint
}

type ExportOutput struct {
	SpreadsheetID string
	UpdatedRange  string
	UpdatedRows   int64
}
