// Package scheduler materializes task templates into dated tasks and orders
// task collections for the list and agenda views.
//
// Both operations are pure: they read their arguments, never mutate them,
// and keep no state between calls. Only task identifiers are random.
package scheduler

import (
	"errors"

	"github.com/google/uuid"
)

// Horizons, in calendar days, over which recurring templates are expanded.
const (
	DailyHorizonDays   = 30
	WeekdayHorizonDays = 56
)

// AgendaLimit is the maximum number of tasks an agenda ordering returns.
const AgendaLimit = 6

// ErrInvalidTemplate is returned by Expand when the time range of a template
// is malformed: only one end present, or start not strictly before end.
var ErrInvalidTemplate = errors.New("invalid template")

// Mode selects the ordering rules applied by Order.
type Mode string

const (
	ModeList   Mode = "list"
	ModeAgenda Mode = "agenda"
)

// newID is swapped in tests.
var newID = uuid.NewString
