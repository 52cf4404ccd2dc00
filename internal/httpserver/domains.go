package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "taskflow/internal/auth/delivery/http"
	"taskflow/internal/middleware"
	syncHTTP "taskflow/internal/sync/delivery/http"
	taskHTTP "taskflow/internal/task/delivery/http"
)

// Each domain follows the same steps: build the handler from its use case,
// then register its routes on the /api/v1 group.

func (srv *HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := authHTTP.New(srv.l, srv.authUC)
	authHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Auth domain registered")
}

func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Task domain registered")
}

func (srv *HTTPServer) setupSyncDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := syncHTTP.New(srv.l, srv.syncUC, srv.taskUC)
	syncHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Sync domain registered")
}
