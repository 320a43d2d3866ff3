package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the payroll endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	records := rg.Group("/payroll")
	{
		records.GET("", h.List)
		records.POST("", h.Create)
		records.GET("/summary", h.Summary)
		records.GET("/months", h.Months)
		records.GET("/:id", h.Detail)
		records.POST("/:id/pay", h.Pay)
		records.PATCH("/:id/status", h.UpdateStatus)
	}
}
