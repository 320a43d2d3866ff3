package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the warehouse endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	warehouses := rg.Group("/warehouses")
	{
		warehouses.GET("", h.List)
		warehouses.GET("/:id", h.Detail)
	}
}
