package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskflow/internal/task"
	"taskflow/pkg/response"
)

// Create godoc
// @Summary     Create tasks
// @Description Expands a task template (one-off, daily or selected weekdays) into tasks and stores them.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body createReq true "Task template"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := h.scope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns the user's tasks ordered by due date, completion, start time, priority and title.
// @Tags        Tasks
// @Produce     json
// @Security    Bearer
// @Param       filter query string false "all, today, done, pending or high"
// @Param       q      query string false "Case-insensitive title search"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := h.scope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Toggle godoc
// @Summary     Toggle completion
// @Tags        Tasks
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/toggle [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := h.scope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Toggle(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := h.scope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Agenda godoc
// @Summary     Day agenda
// @Description Returns at most six tasks of one day, pending and timed first.
// @Tags        Tasks
// @Produce     json
// @Security    Bearer
// @Param       date query string false "YYYY-MM-DD, defaults to today"
// @Success     200 {object} agendaResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/agenda [GET]
func (h *handler) Agenda(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := h.scope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processAgendaReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Agenda(ctx, sc, task.AgendaInput{Date: req.Date})
	if err != nil {
		h.l.Warnf(ctx, "uc.Agenda: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAgendaResp(output))
}

// Stats godoc
// @Summary     Task counters
// @Tags        Stats
// @Produce     json
// @Security    Bearer
// @Success     200 {object} statsResp
// @Router      /api/v1/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := h.scope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Stats(ctx, sc, task.StatsInput{})
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// Weekly godoc
// @Summary     Weekly completion chart
// @Description Completed tasks per day for the last seven days, oldest first.
// @Tags        Stats
// @Produce     json
// @Security    Bearer
// @Success     200 {object} weeklyResp
// @Router      /api/v1/stats/weekly [GET]
func (h *handler) Weekly(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := h.scope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Weekly(ctx, sc, task.StatsInput{})
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newWeeklyResp(output))
}

// GetProfile godoc
// @Summary     Get profile
// @Tags        Profile
// @Produce     json
// @Security    Bearer
// @Success     200 {object} profileResp
// @Router      /api/v1/profile [GET]
func (h *handler) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := h.scope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	p, err := h.uc.GetProfile(ctx, sc)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProfileResp(p))
}

// UpdateProfile godoc
// @Summary     Update profile
// @Description Updates the non-empty fields only.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body updateProfileReq true "Profile fields"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/profile [PUT]
func (h *handler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := h.scope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateProfileReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.uc.UpdateProfile(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProfileResp(p))
}

// Export godoc
// @Summary     Export backup
// @Description Downloads all tasks and the profile as a version 1.0 JSON backup.
// @Tags        Backup
// @Produce     json
// @Security    Bearer
// @Success     200 {object} model.Snapshot
// @Router      /api/v1/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := h.scope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	snap, err := h.uc.Export(ctx, sc)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(time.Now())))
	c.JSON(http.StatusOK, snap)
}

// Import godoc
// @Summary     Import backup
// @Description Replaces tasks and profile fields present in the uploaded backup.
// @Tags        Backup
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body model.Snapshot true "Backup document"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Invalid import data"
// @Router      /api/v1/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := h.scope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	snap, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Import(ctx, sc, snap)
	if err != nil {
		h.l.Warnf(ctx, "uc.Import: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newImportResp(output))
}
