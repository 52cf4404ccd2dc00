package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskflow/internal/model"
	"taskflow/internal/task"
	"taskflow/internal/task/scheduler"
	"taskflow/pkg/datemath"
)

// Create validates the template, expands it and stores every resulting task.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	now := uc.reference(uc.now())

	tmpl, err := uc.buildTemplate(input, now)
	if err != nil {
		return task.CreateOutput{}, err
	}

	tasks, err := scheduler.Expand(tmpl, now)
	if err != nil {
		if errors.Is(err, scheduler.ErrInvalidTemplate) {
			return task.CreateOutput{}, fmt.Errorf("%w: %w", task.ErrInvalidTemplate, err)
		}
		uc.l.Errorf(ctx, "uc.Create.Expand: %v", err)
		return task.CreateOutput{}, err
	}

	if err := uc.repo.CreateTasks(ctx, sc.UserID, tasks); err != nil {
		uc.l.Errorf(ctx, "uc.Create.CreateTasks: user=%s: %v", sc.UserID, err)
		return task.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Create: user=%s recurrence=%s created=%d", sc.UserID, tmpl.Recurrence, len(tasks))
	uc.notify(sc.UserID)

	return task.CreateOutput{Tasks: scheduler.Order(tasks, scheduler.ModeList)}, nil
}

func (uc *implUseCase) buildTemplate(input task.CreateInput, now time.Time) (model.TaskTemplate, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.TaskTemplate{}, task.ErrEmptyTitle
	}

	priority := model.PriorityMedium
	if p := strings.ToLower(strings.TrimSpace(input.Priority)); p != "" {
		priority = model.Priority(p)
		if !priority.Valid() {
			return model.TaskTemplate{}, fmt.Errorf("%w: unknown priority %q", task.ErrInvalidTemplate, input.Priority)
		}
	}

	recurrence, ok := model.ParseRecurrence(input.Recurrence)
	if !ok {
		return model.TaskTemplate{}, fmt.Errorf("%w: unknown recurrence %q", task.ErrInvalidTemplate, input.Recurrence)
	}

	var weekdays []model.Weekday
	if recurrence == model.RecurrenceCustomWeekdays {
		for _, raw := range input.Weekdays {
			d := model.Weekday(strings.ToLower(strings.TrimSpace(raw)))
			if !d.Valid() {
				return model.TaskTemplate{}, fmt.Errorf("%w: unknown weekday %q", task.ErrInvalidTemplate, raw)
			}
			weekdays = append(weekdays, d)
		}
		if len(weekdays) == 0 {
			return model.TaskTemplate{}, task.ErrNoWeekdays
		}
	}

	due := datemath.FormatDate(now)
	if raw := strings.TrimSpace(input.Due); raw != "" {
		d, err := uc.dateMath.Parse(raw, now)
		if err != nil {
			return model.TaskTemplate{}, fmt.Errorf("%w: %v", task.ErrInvalidTemplate, err)
		}
		due = datemath.FormatDate(d)
	}

	return model.TaskTemplate{
		Title:      title,
		Due:        due,
		StartTime:  strings.TrimSpace(input.StartTime),
		EndTime:    strings.TrimSpace(input.EndTime),
		Priority:   priority,
		Project:    strings.TrimSpace(input.Project),
		Recurrence: recurrence,
		Weekdays:   weekdays,
	}, nil
}
