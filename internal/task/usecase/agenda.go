package usecase

import (
	"context"
	"fmt"
	"strings"

	"taskflow/internal/model"
	"taskflow/internal/task"
	"taskflow/internal/task/repository"
	"taskflow/internal/task/scheduler"
	"taskflow/pkg/datemath"
)

const (
	completedDisplay = "✓ Completed"
	allDayDisplay    = "All day"
)

// Agenda returns the ordered, decorated agenda of one day.
func (uc *implUseCase) Agenda(ctx context.Context, sc model.Scope, input task.AgendaInput) (task.AgendaOutput, error) {
	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = uc.today(input.Now)
	} else if _, err := datemath.ParseDate(date, uc.dateMath.Location()); err != nil {
		return task.AgendaOutput{}, fmt.Errorf("%w: %q", task.ErrInvalidDate, input.Date)
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{UserID: sc.UserID, Due: date})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Agenda.ListTasks: user=%s date=%s: %v", sc.UserID, date, err)
		return task.AgendaOutput{}, err
	}

	ordered := scheduler.Order(tasks, scheduler.ModeAgenda)
	items := make([]task.AgendaItem, 0, len(ordered))
	for _, t := range ordered {
		items = append(items, decorate(t))
	}

	return task.AgendaOutput{Date: date, Items: items}, nil
}

func decorate(t model.Task) task.AgendaItem {
	timed := t.StartTime != "" && t.EndTime != ""

	item := task.AgendaItem{Task: t, TimeDisplay: allDayDisplay}
	switch {
	case t.Done:
		item.TimeDisplay = completedDisplay
	case timed:
		item.TimeDisplay = datemath.FormatClock12(t.StartTime) + " - " + datemath.FormatClock12(t.EndTime)
	}

	project := t.Project
	if project == "" {
		project = model.DefaultProject
	}
	item.Description = fmt.Sprintf("%s priority • %s", t.Priority, project)

	if timed {
		if span, err := datemath.ClockSpan(t.StartTime, t.EndTime); err == nil {
			item.Duration = fmt.Sprintf("%d min", int(span.Minutes()))
		}
	}
	return item
}
