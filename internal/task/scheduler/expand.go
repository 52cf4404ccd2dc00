package scheduler

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"taskflow/internal/model"
	"taskflow/pkg/datemath"
)

const dailySuffix = "(Daily)"

// Expand turns tmpl into the tasks implied by its recurrence rule.
//
// ref supplies the caller's calendar: weekdays are evaluated in ref's location,
// and an empty tmpl.Due defaults to ref's date. Output order is unspecified.
func Expand(tmpl model.TaskTemplate, ref time.Time) ([]model.Task, error) {
	if err := ValidateTimeRange(tmpl.StartTime, tmpl.EndTime); err != nil {
		return nil, err
	}

	loc := ref.Location()
	var due time.Time
	if tmpl.Due == "" {
		y, m, d := ref.Date()
		due = time.Date(y, m, d, 0, 0, 0, 0, loc)
	} else {
		var err error
		if due, err = datemath.ParseDate(tmpl.Due, loc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
		}
	}

	switch tmpl.Recurrence {
	case model.RecurrenceDaily:
		tasks := make([]model.Task, 0, DailyHorizonDays)
		title := tmpl.Title + " " + dailySuffix
		for i := 0; i < DailyHorizonDays; i++ {
			tasks = append(tasks, instance(tmpl, title, datemath.AddDays(due, i), model.RecurrenceDaily, nil))
		}
		return tasks, nil

	case model.RecurrenceCustomWeekdays:
		selected := canonicalWeekdays(tmpl.Weekdays)
		title := fmt.Sprintf("%s (%s)", tmpl.Title, weekdayLabel(selected))
		var tasks []model.Task
		for i := 0; i < WeekdayHorizonDays; i++ {
			day := datemath.AddDays(due, i)
			if !slices.Contains(selected, model.WeekdayOf(day.Weekday())) {
				continue
			}
			tasks = append(tasks, instance(tmpl, title, day, model.RecurrenceCustomWeekdays, selected))
		}
		return tasks, nil

	default:
		return []model.Task{instance(tmpl, tmpl.Title, due, model.RecurrenceNone, nil)}, nil
	}
}

func instance(tmpl model.TaskTemplate, title string, day time.Time, origin model.Recurrence, weekdays []model.Weekday) model.Task {
	project := tmpl.Project
	if project == "" {
		project = model.DefaultProject
	}
	return model.Task{
		ID:        newID(),
		Title:     title,
		Due:       datemath.FormatDate(day),
		StartTime: tmpl.StartTime,
		EndTime:   tmpl.EndTime,
		Priority:  tmpl.Priority,
		Project:   project,
		Recurring: origin,
		Weekdays:  slices.Clone(weekdays),
	}
}

// ValidateTimeRange checks that start and end are both empty, or both valid
// "HH:MM" clocks with start before end.
func ValidateTimeRange(start, end string) error {
	if start == "" && end == "" {
		return nil
	}
	if start == "" || end == "" {
		return fmt.Errorf("%w: start and end time must be given together", ErrInvalidTemplate)
	}
	s, err := datemath.ParseClock(start)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	e, err := datemath.ParseClock(end)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	if s >= e {
		return fmt.Errorf("%w: start time %s is not before end time %s", ErrInvalidTemplate, start, end)
	}
	return nil
}

// canonicalWeekdays dedupes days, drops unknown tags and sorts Monday first.
func canonicalWeekdays(days []model.Weekday) []model.Weekday {
	out := make([]model.Weekday, 0, len(days))
	for _, d := range model.Weekdays {
		if slices.Contains(days, d) {
			out = append(out, d)
		}
	}
	return out
}

func weekdayLabel(days []model.Weekday) string {
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.Abbrev()
	}
	return strings.Join(names, ", ")
}
