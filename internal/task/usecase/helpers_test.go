package usecase_test

import (
	"context"
	"slices"
	"sync"
	"time"

	"taskflow/internal/model"
	"taskflow/internal/task/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// fakeRepo is an in-memory repository.Repository keyed by user.
type fakeRepo struct {
	mu       sync.Mutex
	tasks    map[string][]model.Task
	profiles map[string]model.Profile
	failList error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{tasks: map[string][]model.Task{}, profiles: map[string]model.Profile{}}
}

func (f *fakeRepo) CreateTasks(ctx context.Context, userID string, tasks []model.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[userID] = append(f.tasks[userID], tasks...)
	return nil
}

func (f *fakeRepo) GetTask(ctx context.Context, userID, id string) (model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tasks[userID] {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, nil
}

func (f *fakeRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	if f.failList != nil {
		return nil, f.failList
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Task
	for _, t := range f.tasks[opt.UserID] {
		switch {
		case opt.Due != "" && t.Due != opt.Due,
			opt.DueFrom != "" && t.Due < opt.DueFrom,
			opt.DueTo != "" && t.Due > opt.DueTo,
			opt.Done != nil && t.Done != *opt.Done,
			opt.Priority != "" && string(t.Priority) != opt.Priority:
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeRepo) UpdateDone(ctx context.Context, opt repository.UpdateDoneOptions) (model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks[opt.UserID] {
		if t.ID == opt.ID {
			f.tasks[opt.UserID][i].Done = opt.Done
			return f.tasks[opt.UserID][i], nil
		}
	}
	return model.Task{}, nil
}

func (f *fakeRepo) DeleteTask(ctx context.Context, userID, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	before := len(f.tasks[userID])
	f.tasks[userID] = slices.DeleteFunc(f.tasks[userID], func(t model.Task) bool { return t.ID == id })
	return len(f.tasks[userID]) < before, nil
}

func (f *fakeRepo) ReplaceTasks(ctx context.Context, userID string, tasks []model.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[userID] = slices.Clone(tasks)
	return nil
}

func (f *fakeRepo) ChangedSince(ctx context.Context, sinceMillis int64) ([]string, error) {
	return nil, nil
}

func (f *fakeRepo) GetProfile(ctx context.Context, userID string) (model.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.profiles[userID], nil
}

func (f *fakeRepo) UpsertProfile(ctx context.Context, userID string, p model.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles[userID] = p
	return nil
}

func (f *fakeRepo) Ping(context.Context) error { return nil }
func (f *fakeRepo) Close() error { return nil }

type recordingNotifier struct {
	users []string
}

func (n *recordingNotifier) Notify(userID string) { n.users = append(n.users, userID) }

// wednesday is 2024-05-01 10:00 UTC.
var wednesday = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

var scope = model.Scope{UserID: "u1", Username: "alex"}
