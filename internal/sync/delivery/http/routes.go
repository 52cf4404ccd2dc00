package http

import (
	"github.com/gin-gonic/gin"

	"taskflow/internal/middleware"
)

// RegisterRoutes maps the sync endpoints. Both require a bearer session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sync := rg.Group("/sync", mw.Auth())
	{
		sync.POST("", h.Push)
		sync.POST("/load", h.Load)
	}
}
