package http

import (
	"errors"
	"net/http"

	"taskflow/internal/task"
	pkgErrors "taskflow/pkg/errors"
)

var validationErrors = []error{
	task.ErrEmptyTitle,
	task.ErrNoWeekdays,
	task.ErrInvalidTemplate,
	task.ErrInvalidFilter,
	task.ErrInvalidDate,
	task.ErrInvalidImport,
}

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors are reported as 500.
func (h *handler) mapError(err error) error {
	if errors.Is(err, task.ErrTaskNotFound) {
		return pkgErrors.NewHTTPError(http.StatusNotFound, task.ErrTaskNotFound.Error())
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	return pkgErrors.ErrInternalServerError
}
