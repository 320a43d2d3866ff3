package http

import (
	"nexstock/internal/model"
	"nexstock/internal/report"
	"nexstock/pkg/response"
)

type salesPointResp struct {
	Date    string         `json:"date"`
	Revenue response.Money `json:"revenue" swaggertype:"number"`
	Orders  int            `json:"orders"`
}

func newSalesPointResp(p report.SalesPoint) salesPointResp {
	return salesPointResp{Date: p.Label, Revenue: response.Money(p.Revenue), Orders: p.Orders}
}

type categoryResp struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type dashboardResp struct {
	TotalProducts int              `json:"totalProducts"`
	TotalStock    int              `json:"totalStock"`
	LowStockCount int              `json:"lowStockCount"`
	TotalValue    response.Money   `json:"totalValue" swaggertype:"number"`
	Sales         []salesPointResp `json:"sales"`
	Categories    []categoryResp   `json:"categories"`
}

func (h *handler) newDashboardResp(out report.DashboardOutput) dashboardResp {
	sales := make([]salesPointResp, len(out.Sales))
	for i, p := range out.Sales {
		sales[i] = newSalesPointResp(p)
	}
	categories := make([]categoryResp, len(out.Categories))
	for i, c := range out.Categories {
		categories[i] = categoryResp{Name: c.Name, Value: c.Value, Color: c.Color}
	}
	return dashboardResp{
		TotalProducts: out.TotalProducts,
		TotalStock:    out.TotalStock,
		LowStockCount: out.LowStockCount,
		TotalValue:    response.Money(out.TotalValue),
		Sales:         sales,
		Categories:    categories,
	}
}

type lowStockResp struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	SKU      string            `json:"sku"`
	Stock    int               `json:"stock"`
	MinStock int               `json:"minStock"`
	Status   model.StockStatus `json:"status"`
}

type categoryValueResp struct {
	Name  string         `json:"name"`
	Value response.Money `json:"value" swaggertype:"number"`
}

type inventoryResp struct {
	TotalValue      response.Money      `json:"totalValue" swaggertype:"number"`
	TotalStock      int                 `json:"totalStock"`
	LowStockItems   []lowStockResp      `json:"lowStockItems"`
	ValueByCategory []categoryValueResp `json:"valueByCategory"`
}

func (h *handler) newInventoryResp(out report.InventoryOutput) inventoryResp {
	low := make([]lowStockResp, len(out.LowStockItems))
	for i, item := range out.LowStockItems {
		low[i] = lowStockResp{
			ID:       item.ID,
			Name:     item.Name,
			SKU:      item.SKU,
			Stock:    item.Stock,
			MinStock: item.MinStock,
			Status:   model.StockStatusOf(item.Stock, item.MinStock),
		}
	}
	values := make([]categoryValueResp, len(out.ValueByCategory))
	for i, v := range out.ValueByCategory {
		values[i] = categoryValueResp{Name: v.Name, Value: response.Money(v.Value)}
	}
	return inventoryResp{
		TotalValue:      response.Money(out.TotalValue),
		TotalStock:      out.TotalStock,
		LowStockItems:   low,
		ValueByCategory: values,
	}
}

type profitPointResp struct {
	salesPointResp
	Profit   response.Money `json:"profit" swaggertype:"number"`
	Expenses response.Money `json:"expenses" swaggertype:"number"`
}

type salesResp struct {
	TotalRevenue  response.Money    `json:"totalRevenue" swaggertype:"number"`
	TotalOrders   int               `json:"totalOrders"`
	AvgOrderValue response.Money    `json:"avgOrderValue" swaggertype:"number"`
	GrossProfit   response.Money    `json:"grossProfit" swaggertype:"number"`
	Series        []profitPointResp `json:"series"`
}

func (h *handler) newSalesResp(out report.SalesOutput) salesResp {
	series := make([]profitPointResp, len(out.Series))
	for i, p := range out.Series {
		series[i] = profitPointResp{
			salesPointResp: newSalesPointResp(p.SalesPoint),
			Profit:         response.Money(p.Profit),
			Expenses:       response.Money(p.Expenses),
		}
	}
	return salesResp{
		TotalRevenue:  response.Money(out.TotalRevenue),
		TotalOrders:   out.TotalOrders,
		AvgOrderValue: response.Money(out.AvgOrderValue),
		GrossProfit:   response.Money(out.GrossProfit),
		Series:        series,
	}
}

type exportResp struct {
	SpreadsheetID string `json:"spreadsheetId"`
	UpdatedRange  string `json:"updatedRange"`
	UpdatedRows   int64  `json:"updatedRows"`
}
