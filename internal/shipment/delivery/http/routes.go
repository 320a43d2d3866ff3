package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the shipment endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	shipments := rg.Group("/shipments")
	{
		shipments.POST("", h.Create)
		shipments.GET("", h.List)
		shipments.GET("/stats", h.Stats)
		shipments.GET("/:id", h.Detail)
		shipments.PUT("/:id", h.Update)
		shipments.DELETE("/:id", h.Delete)
	}
}
