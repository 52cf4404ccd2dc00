package usecase

import (
	"time"

	"taskflow/internal/task"
	"taskflow/internal/task/repository"
	"taskflow/pkg/datemath"
	pkgLog "taskflow/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	dateMath *datemath.Parser
	notifier task.ChangeNotifier
	now      func() time.Time
}

// New creates a new task UseCase instance. notifier may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	dateMath *datemath.Parser,
	notifier task.ChangeNotifier,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
		notifier: notifier,
		now:      time.Now,
	}
}

var _ task.UseCase = (*implUseCase)(nil)
