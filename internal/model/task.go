package model

import (
	"strings"
	"time"
)

// DefaultProject is assigned to tasks created without a project.
const DefaultProject = "General"

// Priority is the urgency of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank orders priorities high first. Unknown priorities rank last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// Recurrence is the rule a template is expanded with. The string values
// match the exported data format.
type Recurrence string

const (
	RecurrenceNone           Recurrence = "none"
	RecurrenceDaily          Recurrence = "everyday"
	RecurrenceCustomWeekdays Recurrence = "weekdays"
)

// ParseRecurrence accepts the wire values plus the "daily" and
// "customWeekdays" aliases. An empty string means none.
func ParseRecurrence(s string) (Recurrence, bool) {
	switch strings.TrimSpace(s) {
	case "", string(RecurrenceNone):
		return RecurrenceNone, true
	case string(RecurrenceDaily), "daily":
		return RecurrenceDaily, true
	case string(RecurrenceCustomWeekdays), "customWeekdays", "custom_weekdays":
		return RecurrenceCustomWeekdays, true
	}
	return "", false
}

// Weekday is a lowercase three-letter weekday tag, e.g. "mon".
type Weekday string

const (
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tue"
	Wednesday Weekday = "wed"
	Thursday  Weekday = "thu"
	Friday    Weekday = "fri"
	Saturday  Weekday = "sat"
	Sunday    Weekday = "sun"
)

// Weekdays lists every tag Monday first.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayAbbrev = map[Weekday]string{
	Monday: "Mon", Tuesday: "Tue", Wednesday: "Wed", Thursday: "Thu",
	Friday: "Fri", Saturday: "Sat", Sunday: "Sun",
}

// WeekdayOf maps a time.Weekday to its tag.
func WeekdayOf(d time.Weekday) Weekday {
	// time.Weekday counts from Sunday.
	return Weekdays[(int(d)+6)%7]
}

// Valid reports whether w is a known tag.
func (w Weekday) Valid() bool {
	_, ok := weekdayAbbrev[w]
	return ok
}

// Abbrev returns the capitalized abbreviation, e.g. "Mon".
func (w Weekday) Abbrev() string {
	return weekdayAbbrev[w]
}

// Task is one materialized, independently completable task.
type Task struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Due       string     `json:"due"`                 // YYYY-MM-DD
	StartTime string     `json:"startTime,omitempty"` // HH:MM, empty when untimed
	EndTime   string     `json:"endTime,omitempty"`
	Priority  Priority   `json:"priority"`
	Project   string     `json:"project,omitempty"`
	Done      bool       `json:"done"`
	Recurring Recurrence `json:"recurring,omitempty"`
	Weekdays  []Weekday  `json:"weekdays,omitempty"`
}

// HasTime reports whether the task has a start time.
func (t Task) HasTime() bool {
	return t.StartTime != ""
}

// TaskTemplate is the user input a task, or a series of tasks, is expanded from.
type TaskTemplate struct {
	Title      string
	Due        string // YYYY-MM-DD; empty means the reference day
	StartTime  string
	EndTime    string
	Priority   Priority
	Project    string
	Recurrence Recurrence
	Weekdays   []Weekday
}
