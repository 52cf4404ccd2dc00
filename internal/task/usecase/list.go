package usecase

import (
	"context"
	"fmt"
	"strings"

	"taskflow/internal/model"
	"taskflow/internal/task"
	"taskflow/internal/task/repository"
	"taskflow/internal/task/scheduler"
)

// List returns the user's tasks for the list view.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	opt := repository.ListTasksOptions{UserID: sc.UserID}

	switch strings.ToLower(strings.TrimSpace(input.Filter)) {
	case "", task.FilterAll:
	case task.FilterToday:
		opt.Due = uc.today(input.Now)
	case task.FilterDone:
		done := true
		opt.Done = &done
	case task.FilterPending:
		done := false
		opt.Done = &done
	case task.FilterHigh:
		opt.Priority = string(model.PriorityHigh)
	default:
		return task.ListOutput{}, fmt.Errorf("%w: %q", task.ErrInvalidFilter, input.Filter)
	}

	tasks, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List.ListTasks: user=%s: %v", sc.UserID, err)
		return task.ListOutput{}, err
	}

	if q := strings.TrimSpace(input.Query); q != "" {
		matched := make([]model.Task, 0, len(tasks))
		for _, t := range tasks {
			if containsFold(t.Title, q) {
				matched = append(matched, t)
			}
		}
		tasks = matched
	}

	ordered := scheduler.Order(tasks, scheduler.ModeList)
	return task.ListOutput{Tasks: ordered, Total: len(ordered)}, nil
}
