package usecase

import (
	"context"

	"taskflow/internal/model"
	"taskflow/internal/task"
	"taskflow/internal/task/repository"
	"taskflow/pkg/datemath"
)

const (
	weeklyDays      = 7
	weeklyHighlight = 3
)

// Stats counts today's tasks and the user's completed and pending tasks.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope, input task.StatsInput) (task.StatsOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats.ListTasks: user=%s: %v", sc.UserID, err)
		return task.StatsOutput{}, err
	}

	today := uc.today(input.Now)
	var out task.StatsOutput
	for _, t := range tasks {
		if t.Due == today {
			out.TotalToday++
		}
		if t.Done {
			out.Completed++
		} else {
			out.Pending++
		}
	}
	return out, nil
}

// Weekly returns completed-task counts for the seven days ending today.
func (uc *implUseCase) Weekly(ctx context.Context, sc model.Scope, input task.StatsInput) (task.WeeklyOutput, error) {
	ref := uc.reference(input.Now)
	today := uc.dateMath.StartOfDay(ref)
	first := datemath.AddDays(today, -(weeklyDays - 1))

	done := true
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		UserID:  sc.UserID,
		DueFrom: datemath.FormatDate(first),
		DueTo:   datemath.FormatDate(today),
		Done:    &done,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Weekly.ListTasks: user=%s: %v", sc.UserID, err)
		return task.WeeklyOutput{}, err
	}

	perDay := make(map[string]int, weeklyDays)
	for _, t := range tasks {
		perDay[t.Due]++
	}

	points := make([]task.WeeklyPoint, 0, weeklyDays)
	for i := 0; i < weeklyDays; i++ {
		day := datemath.AddDays(first, i)
		date := datemath.FormatDate(day)
		points = append(points, task.WeeklyPoint{
			Day:       model.WeekdayOf(day.Weekday()).Abbrev(),
			Date:      date,
			Value:     perDay[date],
			Highlight: i == weeklyHighlight,
		})
	}
	return task.WeeklyOutput{Points: points}, nil
}
