package http

import (
	"github.com/gin-gonic/gin"

	"nexstock/internal/middleware"
)

// RegisterRoutes maps the assistant and forecast endpoints onto rg.
// Every call that can reach the language model is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/assistant/sessions")
	{
		sessions.POST("/:session_id/ask", mw.RateLimit(), h.Ask)
		sessions.GET("/:session_id", mw.RateLimit(), h.Transcript)
		sessions.DELETE("/:session_id/highlight", mw.RateLimit(), h.ClearHighlight)
	}

	rg.POST("/products/:id/forecast", mw.RateLimit(), h.Forecast)
	rg.GET("/products/:id/forecast", h.LatestForecast)
	rg.GET("/forecasts/in-flight", h.InFlight)
}
