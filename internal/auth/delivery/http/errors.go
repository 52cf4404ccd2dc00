package http

import (
	"errors"
	"net/http"

	"taskflow/internal/auth"
	pkgErrors "taskflow/pkg/errors"
)

// mapError translates auth errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
	case errors.Is(err, auth.ErrUnauthorized):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, auth.ErrRegistrationDisabled):
		return pkgErrors.NewHTTPError(http.StatusForbidden, auth.ErrRegistrationDisabled.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
