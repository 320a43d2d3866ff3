package http

import (
	"github.com/gin-gonic/gin"

	"nexstock/pkg/response"
)

// Dashboard godoc
// @Summary     Dashboard figures
// @Description Total products, stock and value, low-stock count, sales series and category distribution.
// @Tags        Reports
// @Produce     json
// @Success     200 {object} dashboardResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reports/dashboard [GET]
func (h *handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Dashboard(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Dashboard: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDashboardResp(output))
}

// Inventory godoc
// @Summary     Inventory report
// @Tags        Reports
// @Produce     json
// @Success     200 {object} inventoryResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reports/inventory [GET]
func (h *handler) Inventory(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Inventory(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Inventory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newInventoryResp(output))
}

// Sales godoc
// @Summary     Sales report
// @Tags        Reports
// @Produce     json
// @Success     200 {object} salesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reports/sales [GET]
func (h *handler) Sales(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Sales(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Sales: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSalesResp(output))
}

// ExportInventory godoc
// @Summary     Export inventory to Google Sheets
// @Tags        Reports
// @Produce     json
// @Success     200 {object} exportResp
// @Failure     502 {object} response.Resp "Bad Gateway"
// @Failure     503 {object} response.Resp "Export not configured"
// @Router      /api/v1/reports/inventory/export [POST]
func (h *handler) ExportInventory(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ExportInventory(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportInventory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, exportResp{
		SpreadsheetID: output.SpreadsheetID,
		UpdatedRange:  output.UpdatedRange,
		UpdatedRows:   output.UpdatedRows,
	})
}
