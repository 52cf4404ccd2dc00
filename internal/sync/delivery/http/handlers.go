package http

import (
	"github.com/gin-gonic/gin"

	"taskflow/internal/middleware"
	"taskflow/pkg/response"
)

// Push godoc
// @Summary     Push to remote
// @Description Uploads the user's snapshot to the remote store now and mirrors timed tasks to Google Calendar when configured.
// @Tags        Sync
// @Produce     json
// @Security    Bearer
// @Success     200 {object} pushResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     409 {object} response.Resp "Sync not configured"
// @Failure     502 {object} response.Resp "Remote store failed"
// @Router      /api/v1/sync [POST]
func (h *handler) Push(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Push(ctx, sc.UserID); err != nil {
		h.l.Warnf(ctx, "uc.Push: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, pushResp{Synced: true})
}

// Load godoc
// @Summary     Load from remote
// @Description Downloads the user's remote snapshot and replaces local data with it.
// @Tags        Sync
// @Produce     json
// @Security    Bearer
// @Success     200 {object} loadResp
// @Failure     400 {object} response.Resp "Invalid remote data"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "No remote data"
// @Failure     409 {object} response.Resp "Sync not configured"
// @Failure     502 {object} response.Resp "Remote store failed"
// @Router      /api/v1/sync/load [POST]
func (h *handler) Load(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	snap, err := h.uc.Fetch(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "uc.Fetch: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.taskUC.Import(ctx, sc, snap)
	if err != nil {
		h.l.Warnf(ctx, "taskUC.Import: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoadResp(output, snap.LastSync))
}
