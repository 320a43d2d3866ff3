package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the report endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.Dashboard)
		reports.GET("/inventory", h.Inventory)
		reports.GET("/sales", h.Sales)
		reports.POST("/inventory/export", h.ExportInventory)
	}
}
