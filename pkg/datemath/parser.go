package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser resolves ISO and relative date strings to calendar days in one location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserIn creates a parser bound to loc. A nil loc means time.Local.
func NewParserIn(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.Local
	}
	return &Parser{location: loc}
}

// Location returns the parser's calendar location.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts an ISO date ("2024-01-31") or a relative phrase ("today",
// "tomorrow", "in 3 days", "next friday") to the start of that day.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(AddDays(p.StartOfDay(baseTime), 1)), nil
	case "yesterday":
		return p.StartOfDay(AddDays(p.StartOfDay(baseTime), -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	if d, err := ParseDate(relative, p.location); err == nil {
		return d, nil
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnknownDate, relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("%w: invalid duration format %q", ErrUnknownDate, relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]
	start := p.StartOfDay(baseTime)

	switch {
	case strings.HasPrefix(unit, "day"):
		return AddDays(start, amount), nil
	case strings.HasPrefix(unit, "week"):
		return AddDays(start, amount*7), nil
	case strings.HasPrefix(unit, "month"):
		return p.StartOfDay(start.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("%w: unknown time unit %q", ErrUnknownDate, unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("%w: unknown weekday %q", ErrUnknownDate, dayName)
	}

	start := p.StartOfDay(baseTime)
	daysUntil := int(targetWeekday - start.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return AddDays(start, daysUntil), nil
}

// Today returns the ISO date of now in the parser's location.
func (p *Parser) Today(now time.Time) string {
	return FormatDate(now.In(p.location))
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
