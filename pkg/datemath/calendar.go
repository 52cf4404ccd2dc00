package datemath

import (
	"fmt"
	"strconv"
	"time"
)

// ParseDate parses an ISO calendar date in loc. A nil loc means time.Local.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate formats t as an ISO calendar date in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddDays moves n calendar days from t, keeping midnight in t's location.
// Unlike t.Add(24*time.Hour*n) it is unaffected by DST transitions.
func AddDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, t.Location())
}

// ParseClock parses a zero-padded "HH:MM" time of day into minutes after midnight.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' || !isDigit(s[0]) || !isDigit(s[1]) || !isDigit(s[3]) || !isDigit(s[4]) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	h, _ := strconv.Atoi(s[:2])
	m, _ := strconv.Atoi(s[3:])
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return h*60 + m, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// FormatClock12 renders "HH:MM" as a 12-hour clock, e.g. "13:05" → "1:05 PM".
// Invalid input is returned unchanged.
func FormatClock12(s string) string {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return s
	}
	return t.Format(Clock12Layout)
}

// ClockSpan returns end minus start for two "HH:MM" values.
func ClockSpan(start, end string) (time.Duration, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	return time.Duration(e-s) * time.Minute, nil
}
