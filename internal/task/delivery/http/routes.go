package http

import (
	"github.com/gin-gonic/gin"

	"notes-copilot/internal/middleware"
)

// RegisterRoutes registers /tasks routes on rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("/relevant", mw.Auth(), h.Relevant)
	}
}
