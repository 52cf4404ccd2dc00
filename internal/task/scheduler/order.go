package scheduler

import (
	"cmp"
	"slices"
	"strings"

	"taskflow/internal/model"
)

// Order returns a sorted copy of tasks.
//
// Both modes rank incomplete before complete, timed before untimed (earlier
// start first), then priority high to low, then title. List mode compares the
// due date before all of these. Agenda mode keeps at most AgendaLimit tasks;
// callers filter to one date first. Unknown modes behave like ModeList.
func Order(tasks []model.Task, mode Mode) []model.Task {
	out := slices.Clone(tasks)
	if mode == ModeAgenda {
		slices.SortStableFunc(out, compareAgenda)
		if len(out) > AgendaLimit {
			out = out[:AgendaLimit]
		}
		return out
	}
	slices.SortStableFunc(out, compareList)
	return out
}

func compareList(a, b model.Task) int {
	if c := strings.Compare(a.Due, b.Due); c != 0 {
		return c
	}
	return compareAgenda(a, b)
}

func compareAgenda(a, b model.Task) int {
	if a.Done != b.Done {
		if a.Done {
			return 1
		}
		return -1
	}
	switch {
	case a.HasTime() && b.HasTime():
		if c := strings.Compare(a.StartTime, b.StartTime); c != 0 {
			return c
		}
	case a.HasTime():
		return -1
	case b.HasTime():
		return 1
	}
	if c := cmp.Compare(a.Priority.Rank(), b.Priority.Rank()); c != 0 {
		return c
	}
	return strings.Compare(a.Title, b.Title)
}
