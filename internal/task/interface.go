package task

import (
	"context"

	"taskflow/internal/model"
)

// UseCase defines the business logic interface for the task domain.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Create validates a template, expands it into tasks and stores them.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	// List returns the user's tasks filtered and ordered for the list view.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	// Agenda returns the first few tasks of one day, decorated for display.
	Agenda(ctx context.Context, sc model.Scope, input AgendaInput) (AgendaOutput, error)
	Toggle(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	Stats(ctx context.Context, sc model.Scope, input StatsInput) (StatsOutput, error)
	Weekly(ctx context.Context, sc model.Scope, input StatsInput) (WeeklyOutput, error)

	GetProfile(ctx context.Context, sc model.Scope) (model.Profile, error)
	UpdateProfile(ctx context.Context, sc model.Scope, input UpdateProfileInput) (model.Profile, error)

	Export(ctx context.Context, sc model.Scope) (model.Snapshot, error)
	Import(ctx context.Context, sc model.Scope, snap model.Snapshot) (ImportOutput, error)
}

// ChangeNotifier is told whenever a user's data changed.
type ChangeNotifier interface {
	Notify(userID string)
}
