package datemath

import "errors"

// Layouts used for calendar dates and times of day on the wire.
const (
	DateLayout    = "2006-01-02"
	ClockLayout   = "15:04"
	Clock12Layout = "3:04 PM"
)

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidClock = errors.New("invalid time of day")
	ErrUnknownDate  = errors.New("unrecognized date expression")
)
