package report

import (
	"github.com/shopspring/decimal"

	"nexstock/internal/catalog"
)

// ItemValue returns price × stock for one item.
func ItemValue(item catalog.Item) decimal.Decimal {
	return decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Stock)))
}

// TotalValue sums ItemValue over items.
func TotalValue(items []catalog.Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(ItemValue(item))
	}
	return total
}

// TotalStock sums on-hand quantity over items.
func TotalStock(items []catalog.Item) int {
	total := 0
	for _, item := range items {
		total += item.Stock
	}
	return total
}

// LowStock returns the items whose stock is below their reorder threshold.
func LowStock(items []catalog.Item) []catalog.Item {
	out := make([]catalog.Item, 0)
	for _, item := range items {
		if item.IsLowStock() {
			out = append(out, item)
		}
	}
	return out
}

// ValueByCategory groups stock value by category. Categories listed in order
// come first, in that order, even when empty; any others follow in order of
// first appearance.
func ValueByCategory(items []catalog.Item, order []string) []CategoryValue {
	index := make(map[string]int, len(order))
	out := make([]CategoryValue, 0, len(order))
	for _, name := range order {
		if _, ok := index[name]; ok {
			continue
		}
		index[name] = len(out)
		out = append(out, CategoryValue{Name: name, Value: decimal.Zero})
	}

	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(out)
			index[item.Category] = i
			out = append(out, CategoryValue{Name: item.Category, Value: decimal.Zero})
		}
		out[i].Value = out[i].Value.Add(ItemValue(item))
	}
	return out
}

// SummarizeSales totals a sales series. The average order value is zero when
// there are no orders.
func SummarizeSales(series []SalesPoint) SalesOutput {
	out := SalesOutput{
		TotalRevenue:  decimal.Zero,
		AvgOrderValue: decimal.Zero,
		Series:        make([]ProfitPoint, len(series)),
	}
	for i, p := range series {
		out.TotalRevenue = out.TotalRevenue.Add(p.Revenue)
		out.TotalOrders += p.Orders
		out.Series[i] = ProfitPoint{
			SalesPoint: p,
			Profit:     p.Revenue.Mul(ProfitShare),
			Expenses:   p.Revenue.Mul(ExpenseShare),
		}
	}
	if out.TotalOrders > 0 {
		out.AvgOrderValue = out.TotalRevenue.Div(decimal.NewFromInt(int64(out.TotalOrders)))
	}
	out.GrossProfit = out.TotalRevenue.Mul(GrossMarginRate)
	return out
}
