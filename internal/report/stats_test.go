package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexstock/internal/catalog"
)

func exampleItems() []catalog.Item {
	return []catalog.Item{
		{ID: "1", Name: "Wireless Headphones", Category: "Electronics", Price: 129.99, Stock: 45, MinStock: 20},
		{ID: "2", Name: "Ergonomic Chair", Category: "Furniture", Price: 249.50, Stock: 12, MinStock: 15},
	}
}

func TestTotals_ExampleCatalog(t *testing.T) {
	items := exampleItems()

	assert.Equal(t, "8843.55", TotalValue(items).StringFixed(2))
	assert.Equal(t, 57, TotalStock(items))

	low := LowStock(items)
	require.Len(t, low, 1)
	assert.Equal(t, "Ergonomic Chair", low[0].Name)
}

func TestTotals_Empty(t *testing.T) {
	assert.True(t, TotalValue(nil).IsZero())
	assert.Zero(t, TotalStock(nil))
	assert.Empty(t, LowStock(nil))
}

func TestLowStock_ThresholdIsExclusive(t *testing.T) {
	items := []catalog.Item{{ID: "a", Stock: 5, MinStock: 5}, {ID: "b", Stock: 4, MinStock: 5}}
	low := LowStock(items)
	require.Len(t, low, 1)
	assert.Equal(t, "b", low[0].ID)
}

func TestValueByCategory(t *testing.T) {
	items := append(exampleItems(), catalog.Item{Category: "Garden", Price: 10, Stock: 3})

	got := ValueByCategory(items, []string{"Electronics", "Furniture", "Home"})
	require.Len(t, got, 4)
	assert.Equal(t, "Electronics", got[0].Name)
	assert.Equal(t, "5849.55", got[0].Value.StringFixed(2))
	assert.Equal(t, "2994.00", got[1].Value.StringFixed(2))
	assert.Equal(t, "Home", got[2].Name)
	assert.True(t, got[2].Value.IsZero())
	assert.Equal(t, "Garden", got[3].Name)
	assert.Equal(t, "30.00", got[3].Value.StringFixed(2))
}

func TestSummarizeSales(t *testing.T) {
	series := []SalesPoint{
		{Label: "Mon", Revenue: decimal.NewFromInt(4000), Orders: 24},
		{Label: "Tue", Revenue: decimal.NewFromInt(3000), Orders: 18},
	}

	out := SummarizeSales(series)
	assert.Equal(t, "7000.00", out.TotalRevenue.StringFixed(2))
	assert.Equal(t, 42, out.TotalOrders)
	assert.Equal(t, "166.67", out.AvgOrderValue.StringFixed(2))
	assert.Equal(t, "2940.00", out.GrossProfit.StringFixed(2))
	require.Len(t, out.Series, 2)
	assert.Equal(t, "1600.00", out.Series[0].Profit.StringFixed(2))
	assert.Equal(t, "2400.00", out.Series[0].Expenses.StringFixed(2))
}

func TestSummarizeSales_NoOrders(t *testing.T) {
	out := SummarizeSales([]SalesPoint{{Label: "Mon", Revenue: decimal.NewFromInt(100)}})
	assert.True(t, out.AvgOrderValue.IsZero())

	empty := SummarizeSales(nil)
	assert.True(t, empty.TotalRevenue.IsZero())
	assert.True(t, empty.AvgOrderValue.IsZero())
	assert.Empty(t, empty.Series)
}
