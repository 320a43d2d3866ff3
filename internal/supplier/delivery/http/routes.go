package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the supplier endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.Create)
		suppliers.GET("", h.List)
		suppliers.GET("/stats", h.Stats)
		suppliers.GET("/:id", h.Detail)
		suppliers.PUT("/:id", h.Update)
		suppliers.DELETE("/:id", h.Delete)
	}
}
