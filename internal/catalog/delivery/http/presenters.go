package http

import (
	"strings"
	"time"

	"nexstock/internal/catalog"
	"nexstock/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Name        string  `json:"name"        binding:"required,max=255"`
	Category    string  `json:"category"    binding:"max=100"`
	SKU         string  `json:"sku"         binding:"max=64"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	MinStock    int     `json:"minStock"`
	Supplier    string  `json:"supplier"`
	Location    string  `json:"location"`
	WarehouseID string  `json:"warehouseId"`
}

func (r createReq) toInput() catalog.CreateItemInput {
	return catalog.CreateItemInput{
		Name:        r.Name,
		Category:    r.Category,
		SKU:         r.SKU,
		Price:       r.Price,
		Stock:       r.Stock,
		MinStock:    r.MinStock,
		Supplier:    r.Supplier,
		Location:    r.Location,
		WarehouseID: r.WarehouseID,
	}
}

// ---

type listReq struct {
	Search      string `form:"search"`
	Category    string `form:"category"`
	WarehouseID string `form:"warehouse_id"`
	LowStock    bool   `form:"low_stock"`
	IDs         string `form:"ids"`
	Limit       int    `form:"limit"`
	Offset      int    `form:"offset"`
}

func (r listReq) toInput() catalog.ListItemsInput {
	limit := r.Limit
	if limit < 0 {
		limit = 0
	}
	if limit > 100 {
		limit = 100
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}

	var ids []string
	for _, id := range strings.Split(r.IDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	return catalog.ListItemsInput{
		Search:      r.Search,
		Category:    r.Category,
		WarehouseID: r.WarehouseID,
		LowStock:    r.LowStock,
		IDs:         ids,
		Limit:       limit,
		Offset:      offset,
	}
}

// ---

type updateReq struct {
	ID          string   `json:"-"`
	Name        *string  `json:"name"        binding:"omitempty,max=255"`
	Category    *string  `json:"category"    binding:"omitempty,max=100"`
	SKU         *string  `json:"sku"         binding:"omitempty,max=64"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	MinStock    *int     `json:"minStock"`
	Supplier    *string  `json:"supplier"`
	Location    *string  `json:"location"`
	WarehouseID *string  `json:"warehouseId"`
}

func (r updateReq) toInput() catalog.UpdateItemInput {
	return catalog.UpdateItemInput{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		SKU:         r.SKU,
		Price:       r.Price,
		Stock:       r.Stock,
		MinStock:    r.MinStock,
		Supplier:    r.Supplier,
		Location:    r.Location,
		WarehouseID: r.WarehouseID,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	SKU         string            `json:"sku"`
	Price       float64           `json:"price"`
	Stock       int               `json:"stock"`
	MinStock    int               `json:"minStock"`
	Status      model.StockStatus `json:"status"`
	Supplier    string            `json:"supplier"`
	Location    string            `json:"location"`
	WarehouseID string            `json:"warehouseId"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func newItemResp(item catalog.Item) itemResp {
	return itemResp{
		ID:          item.ID,
		Name:        item.Name,
		Category:    item.Category,
		SKU:         item.SKU,
		Price:       item.Price,
		Stock:       item.Stock,
		MinStock:    item.MinStock,
		Status:      model.StockStatusOf(item.Stock, item.MinStock),
		Supplier:    item.Supplier,
		Location:    item.Location,
		WarehouseID: item.WarehouseID,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

type itemEnvelope struct {
	Item itemResp `json:"item"`
}

func (h *handler) newItemEnvelope(item catalog.Item) itemEnvelope {
	return itemEnvelope{Item: newItemResp(item)}
}

type listResp struct {
	Items  []itemResp `json:"items"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out catalog.ListItemsOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return listResp{
		Items:  items,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
