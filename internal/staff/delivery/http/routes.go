package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the staff and task endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	members := rg.Group("/staff")
	{
		members.POST("", h.Create)
		members.GET("", h.List)
		members.GET("/stats", h.Stats)
		members.GET("/:id", h.Detail)
		members.PUT("/:id", h.Update)
		members.DELETE("/:id", h.Delete)
	}

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.CreateTask)
		tasks.GET("", h.ListTasks)
		tasks.GET("/:id", h.DetailTask)
		tasks.PUT("/:id", h.UpdateTask)
		tasks.PATCH("/:id/status", h.UpdateTaskStatus)
		tasks.DELETE("/:id", h.DeleteTask)
	}
}
