package http

import (
	"nexstock/internal/model"
	"nexstock/internal/warehouse"
	"nexstock/pkg/response"
)

type warehouseResp struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Capacity     int      `json:"capacity"`
	Used         int      `json:"used"`
	Free         int      `json:"free"`
	Utilization  int      `json:"utilization"`
	HighLoad     bool     `json:"highLoad"`
	Temperature  *float64 `json:"temperature,omitempty"`
	ProductCount int      `json:"productCount"`
}

func newWarehouseResp(w warehouse.Warehouse, productCount int) warehouseResp {
	return warehouseResp{
		ID:           w.ID,
		Name:         w.Name,
		Capacity:     w.Capacity,
		Used:         w.Used,
		Free:         w.Free(),
		Utilization:  w.Utilization(),
		HighLoad:     w.IsHighLoad(),
		Temperature:  w.Temperature,
		ProductCount: productCount,
	}
}

type listResp struct {
	Warehouses     []warehouseResp `json:"warehouses"`
	TotalCapacity  int             `json:"totalCapacity"`
	TotalUsed      int             `json:"totalUsed"`
	AvgTemperature *float64        `json:"avgTemperature,omitempty"`
}

func (h *handler) newListResp(out warehouse.ListOutput) listResp {
	items := make([]warehouseResp, len(out.Warehouses))
	for i, s := range out.Warehouses {
		items[i] = newWarehouseResp(s.Warehouse, s.ProductCount)
	}
	return listResp{
		Warehouses:     items,
		TotalCapacity:  out.TotalCapacity,
		TotalUsed:      out.TotalUsed,
		AvgTemperature: out.AvgTemperature,
	}
}

type productResp struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	SKU      string            `json:"sku"`
	Category string            `json:"category"`
	Stock    int               `json:"stock"`
	MinStock int               `json:"minStock"`
	Status   model.StockStatus `json:"status"`
	Location string            `json:"location"`
}

type detailResp struct {
	Warehouse     warehouseResp  `json:"warehouse"`
	Products      []productResp  `json:"products"`
	TotalValue    response.Money `json:"totalValue" swaggertype:"number"`
	LowStockCount int            `json:"lowStockCount"`
}

func (h *handler) newDetailResp(out warehouse.DetailOutput) detailResp {
	products := make([]productResp, len(out.Products))
	for i, p := range out.Products {
		products[i] = productResp{
			ID:       p.ID,
			Name:     p.Name,
			SKU:      p.SKU,
			Category: p.Category,
			Stock:    p.Stock,
			MinStock: p.MinStock,
			Status:   model.StockStatusOf(p.Stock, p.MinStock),
			Location: p.Location,
		}
	}
	return detailResp{
		Warehouse:     newWarehouseResp(out.Warehouse, len(out.Products)),
		Products:      products,
		TotalValue:    response.Money(out.TotalValue),
		LowStockCount: out.LowStockCount,
	}
}
