package http

import (
	"github.com/gin-gonic/gin"

	"taskflow/internal/middleware"
)

// RegisterRoutes maps /auth endpoints. Login is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	g := rg.Group("/auth")
	{
		g.POST("/login", mw.RateLimit(), h.Login)
		g.POST("/logout", mw.Auth(), h.Logout)
		g.POST("/register", h.Register)
	}
}
