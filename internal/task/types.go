package task

import (
	"time"

	"taskflow/internal/model"
)

// Filter names accepted by List.
const (
	FilterAll     = "all"
	FilterToday   = "today"
	FilterDone    = "done"
	FilterPending = "pending"
	FilterHigh    = "high"
)

// CreateInput is the raw template submitted by the user. Due accepts an ISO
// date or a relative phrase such as "tomorrow".
type CreateInput struct {
	Title      string
	Due        string
	StartTime  string
	EndTime    string
	Priority   string
	Project    string
	Recurrence string
	Weekdays   []string
}

// CreateOutput holds the tasks created from one template.
type CreateOutput struct {
	Tasks []model.Task
}

// ListInput filters the list view. Now defaults to the current time.
type ListInput struct {
	Filter string
	Query  string
	Now    time.Time
}

// ListOutput is the ordered list view.
type ListOutput struct {
	Tasks []model.Task
	Total int
}

// AgendaInput selects the agenda day. An empty Date means today.
type AgendaInput struct {
	Date string
	Now  time.Time
}

// AgendaItem is one agenda row.
type AgendaItem struct {
	Task        model.Task
	TimeDisplay string // "9:00 AM - 10:00 AM", "All day" or "✓ Completed"
	Description string // "high priority • Work"
	Duration    string // "30 min", empty when untimed
}

// AgendaOutput is the agenda of one day.
type AgendaOutput struct {
	Date  string
	Items []AgendaItem
}

// StatsInput carries the reference time for stats. Zero means now.
type StatsInput struct {
	Now time.Time
}

// StatsOutput summarizes the user's tasks.
type StatsOutput struct {
	TotalToday int
	Completed  int
	Pending    int
}

// WeeklyPoint is one bar of the weekly completion chart.
type WeeklyPoint struct {
	Day       string // "Mon"
	Date      string
	Value     int
	Highlight bool
}

// WeeklyOutput holds the seven days ending today, oldest first.
type WeeklyOutput struct {
	Points []WeeklyPoint
}

// UpdateProfileInput updates non-empty fields only.
type UpdateProfileInput struct {
	Name           string
	ProfilePicture string
}

// ImportOutput reports what an import replaced.
type ImportOutput struct {
	TaskCount      int
	ProfileUpdated bool
}
