package http

import (
	"github.com/gin-gonic/gin"

	"notes-copilot/internal/middleware"
)

// RegisterRoutes registers generation and note command routes on rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/provider", mw.Auth(), h.Provider)
	rg.POST("/generate", mw.Auth(), h.Generate)
	rg.POST("/organize", mw.Auth(), h.Organize)

	b := rg.Group("/briefing")
	{
		b.POST("/daily", mw.Auth(), h.Daily)
		b.POST("/monthly", mw.Auth(), h.Monthly)
	}
}
