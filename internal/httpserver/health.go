package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "taskflow/pkg/errors"
	"taskflow/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "taskflow API v1"
	HealthVersion = "1.0.0"
	ServiceName   = "taskflow"

	readyTimeout = 2 * time.Second
)

var errNotReady = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "not ready")

type healthResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
	Service string `json:"service"`
}

func newHealthResp(status string) healthResp {
	return healthResp{Status: status, Message: HealthMessage, Version: HealthVersion, Service: ServiceName}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newHealthResp("healthy"))
}

// readyCheck reports ready once ReadyCheck passes.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready to serve traffic"
// @Failure 503 {object} response.Resp "Database unreachable"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if srv.readiness != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()
		if err := srv.readiness(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: %v", err)
			response.Error(c, errNotReady)
			return
		}
	}
	response.OK(c, newHealthResp("ready"))
}

// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newHealthResp("alive"))
}
