package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"taskflow/internal/middleware"
	"taskflow/internal/model"
)

var errMissingID = errors.New("id is required")

// scope returns the authenticated scope. Auth middleware guarantees it on
// every route of this package.
func (h *handler) scope(c *gin.Context) (model.Scope, bool) {
	return middleware.GetScope(c)
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processAgendaReq(c *gin.Context) (agendaReq, error) {
	var req agendaReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processIDParam(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}

func (h *handler) processUpdateProfileReq(c *gin.Context) (updateProfileReq, error) {
	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processImportReq(c *gin.Context) (model.Snapshot, error) {
	var snap model.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		return snap, err
	}
	return snap, nil
}
