package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the product endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	products := rg.Group("/products")
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.GET("/:id", h.Detail)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}
