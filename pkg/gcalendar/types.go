package gcalendar

import "time"

// UpsertEventRequest is the input for creating or replacing a Google Calendar event.
type UpsertEventRequest struct {
	CalendarID  string
	EventID     string // see EventID
	Owner       string // stored as a private extended property
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Europe/Berlin"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	Owner      string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
