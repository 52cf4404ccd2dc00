package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
)

// OwnerProperty is the private extended property that marks events owned by a user.
const OwnerProperty = "taskflowOwner"

// EventID derives a stable, API-valid event id (base32hex) from its parts.
func EventID(parts ...string) string {
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("taskflow:"+strings.Join(parts, "/")))
	return "tf" + strings.ReplaceAll(id.String(), "-", "")
}

// UpsertEvent updates the event with req.EventID, creating it when it does not exist.
func (c *Client) UpsertEvent(ctx context.Context, req UpsertEventRequest) (*Event, error) {
	calendarID := calendarOrPrimary(req.CalendarID)
	event := &calendar.Event{
		Id:          req.EventID,
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}
	if req.Owner != "" {
		event.ExtendedProperties = &calendar.EventExtendedProperties{
			Private: map[string]string{OwnerProperty: req.Owner},
		}
	}

	saved, err := c.service.Events.Update(calendarID, req.EventID, event).Context(ctx).Do()
	if isStatus(err, http.StatusNotFound) {
		saved, err = c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to upsert calendar event %s: %w", req.EventID, err)
	}

	return &Event{
		ID:          saved.Id,
		Summary:     saved.Summary,
		Description: saved.Description,
		HtmlLink:    saved.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

// DeleteEvent removes an event. Events that are already gone are not an error.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	err := c.service.Events.Delete(calendarOrPrimary(calendarID), eventID).Context(ctx).Do()
	if err == nil || isStatus(err, http.StatusNotFound) || isStatus(err, http.StatusGone) {
		return nil
	}
	return fmt.Errorf("failed to delete calendar event %s: %w", eventID, err)
}

// ListEvents lists single events in [TimeMin, TimeMax), optionally only those owned by req.Owner.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarOrPrimary(req.CalendarID)).
		Context(ctx).
		SingleEvents(true).
		ShowDeleted(false)
	if !req.TimeMin.IsZero() {
		call = call.TimeMin(req.TimeMin.Format(time.RFC3339))
	}
	if !req.TimeMax.IsZero() {
		call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}
	if req.Owner != "" {
		call = call.PrivateExtendedProperty(OwnerProperty + "=" + req.Owner)
	}

	var events []Event
	err := call.Pages(ctx, func(page *calendar.Events) error {
		for _, item := range page.Items {
			start, err := parseEventTime(item.Start)
			if err != nil {
				return fmt.Errorf("event %s start: %w", item.Id, err)
			}
			end, err := parseEventTime(item.End)
			if err != nil {
				return fmt.Errorf("event %s end: %w", item.Id, err)
			}
			events = append(events, Event{
				ID:          item.Id,
				Summary:     item.Summary,
				Description: item.Description,
				HtmlLink:    item.HtmlLink,
				StartTime:   start,
				EndTime:     end,
				Location:    item.Location,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return events, nil
}

// parseEventTime reads a timed or all-day event boundary. A missing boundary
// is the zero time.
func parseEventTime(t *calendar.EventDateTime) (time.Time, error) {
	switch {
	case t == nil:
		return time.Time{}, nil
	case t.DateTime != "":
		return time.Parse(time.RFC3339, t.DateTime)
	case t.Date != "":
		return time.Parse(time.DateOnly, t.Date)
	}
	return time.Time{}, nil
}

func calendarOrPrimary(id string) string {
	if id == "" {
		return "primary"
	}
	return id
}

func isStatus(err error, code int) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == code
}
