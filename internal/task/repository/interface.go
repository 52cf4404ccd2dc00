package repository

import (
	"context"

	"taskflow/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
	ProfileRepository
	Ping(ctx context.Context) error
	Close() error
}

// TaskRepository defines all data access methods for tasks. Every call is
// scoped to one user.
type TaskRepository interface {
	CreateTasks(ctx context.Context, userID string, tasks []model.Task) error
	// GetTask returns a zero-value Task (ID == "") when not found.
	GetTask(ctx context.Context, userID, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateDone(ctx context.Context, opt UpdateDoneOptions) (model.Task, error)
	// DeleteTask reports whether a row was removed.
	DeleteTask(ctx context.Context, userID, id string) (bool, error)
	ReplaceTasks(ctx context.Context, userID string, tasks []model.Task) error
	// ChangedSince lists users whose data changed after the given unix millis.
	ChangedSince(ctx context.Context, sinceMillis int64) ([]string, error)
}

// ProfileRepository stores per-user display settings.
type ProfileRepository interface {
	// GetProfile returns a zero-value Profile when none is stored.
	GetProfile(ctx context.Context, userID string) (model.Profile, error)
	UpsertProfile(ctx context.Context, userID string, p model.Profile) error
}
