package http

import (
	"errors"
	"net/http"

	remotesync "taskflow/internal/sync"
	"taskflow/internal/task"
	pkgErrors "taskflow/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, remotesync.ErrDisabled):
		return pkgErrors.NewHTTPError(http.StatusConflict, remotesync.ErrDisabled.Error())
	case errors.Is(err, remotesync.ErrRemoteNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, remotesync.ErrRemoteNotFound.Error())
	case errors.Is(err, remotesync.ErrRemote):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, remotesync.ErrRemote.Error())
	case errors.Is(err, task.ErrInvalidImport):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return pkgErrors.ErrInternalServerError
}
