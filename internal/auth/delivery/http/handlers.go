package http

import (
	"github.com/gin-gonic/gin"

	"taskflow/internal/middleware"
	"taskflow/pkg/response"
)

// Login godoc
// @Summary     Sign in
// @Description Exchanges username and password for a bearer token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Failure     429 {object} response.Resp "Too many attempts"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sess, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoginResp(sess))
}

// Logout godoc
// @Summary     Sign out
// @Description Invalidates the current bearer token.
// @Tags        Auth
// @Produce     json
// @Security    Bearer
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Logout(ctx, middleware.BearerToken(c)); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Register godoc
// @Summary     Register
// @Description Accounts are provisioned in the users file; this endpoint always refuses.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq false "Ignored"
// @Failure     403 {object} response.Resp "Registration disabled"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerReq
	_ = c.ShouldBindJSON(&req)

	err := h.uc.Register(ctx, req.toInput())
	response.Error(c, h.mapError(err))
}
