package http

import (
	"github.com/gin-gonic/gin"

	"taskflow/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every route requires a bearer session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	authed := rg.Group("", mw.Auth())

	tasks := authed.Group("/tasks")
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.PATCH("/:id/toggle", h.Toggle)
		tasks.DELETE("/:id", h.Delete)
	}

	authed.GET("/agenda", h.Agenda)
	authed.GET("/stats", h.Stats)
	authed.GET("/stats/weekly", h.Weekly)

	authed.GET("/profile", h.GetProfile)
	authed.PUT("/profile", h.UpdateProfile)

	authed.GET("/export", h.Export)
	authed.POST("/import", h.Import)
}
