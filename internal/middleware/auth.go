package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"taskflow/internal/model"
	"taskflow/pkg/log"
	"taskflow/pkg/response"
)

const (
	scopeKey     = "scope"
	bearerPrefix = "Bearer "
)

// Auth requires a valid "Authorization: Bearer <token>" header and stores the
// resolved scope on the gin context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := BearerToken(c)
		if token == "" {
			response.Unauthorized(c)
			return
		}

		sc, err := m.auth.Authenticate(ctx, token)
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Set(scopeKey, sc)
		c.Request = c.Request.WithContext(log.WithFields(ctx, "user_id", sc.UserID))
		c.Next()
	}
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(h[len(bearerPrefix):])
}

// GetScope returns the scope set by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok && sc.UserID != ""
}
