package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the browser-facing OAuth routes. They are not
// behind bearer auth: the provider redirects the browser here.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	tt := rg.Group("/ticktick")
	{
		tt.GET("/authorize", h.Authorize)
		tt.GET("/callback", h.Callback)
	}
}
