package http

import (
	remotesync "taskflow/internal/sync"
	"taskflow/internal/task"
	"taskflow/pkg/log"
)

type handler struct {
	l      log.Logger
	uc     remotesync.UseCase
	taskUC task.UseCase
}

// New creates the sync handler. Loading a remote snapshot goes through the
// task use case's import so it gets the same validation as a file import.
func New(l log.Logger, uc remotesync.UseCase, taskUC task.UseCase) *handler {
	return &handler{l: l, uc: uc, taskUC: taskUC}
}
