package sync

import (
	"context"

	"taskflow/internal/model"
	"taskflow/pkg/gcalendar"
)

// UseCase mirrors user data to the remote store and, optionally, Google Calendar.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Notify schedules a debounced push for the user. It never blocks.
	Notify(userID string)
	// Push uploads the user's snapshot now.
	Push(ctx context.Context, userID string) error
	// Fetch downloads the user's remote snapshot.
	Fetch(ctx context.Context, sc model.Scope) (model.Snapshot, error)

	// Start begins the periodic sweep. Stop cancels pending pushes and waits for running ones.
	Start(ctx context.Context) error
	Stop(ctx context.Context)
}

// Calendar is the subset of the Google Calendar client the mirror uses.
type Calendar interface {
	UpsertEvent(ctx context.Context, req gcalendar.UpsertEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}
