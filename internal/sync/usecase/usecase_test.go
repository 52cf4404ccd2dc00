package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/model"
	remotesync "taskflow/internal/sync"
	"taskflow/internal/sync/usecase"
	"taskflow/internal/task/repository"
	"taskflow/internal/task/repository/sqlite"
	"taskflow/pkg/gcalendar"
	"taskflow/pkg/log"
)

type remoteStore struct {
	mu      sync.Mutex
	puts    map[string]model.Snapshot
	putHits atomic.Int32
	fail    []int // status codes returned by successive PUTs before succeeding
}

func newRemote(t *testing.T, fail ...int) (*remoteStore, *httptest.Server) {
	t.Helper()
	rs := &remoteStore{puts: map[string]model.Snapshot{}, fail: fail}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.mu.Lock()
		defer rs.mu.Unlock()

		switch r.Method {
		case http.MethodPut:
			rs.putHits.Add(1)
			if len(rs.fail) > 0 {
				code := rs.fail[0]
				rs.fail = rs.fail[1:]
				w.WriteHeader(code)
				return
			}
			body, _ := io.ReadAll(r.Body)
			var snap model.Snapshot
			if err := json.Unmarshal(body, &snap); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			rs.puts[r.URL.Path] = snap
			w.WriteHeader(http.StatusOK)
		case http.MethodGet:
			snap, ok := rs.puts[r.URL.Path]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_ = json.NewEncoder(w).Encode(snap)
		}
	}))
	t.Cleanup(ts.Close)
	return rs, ts
}

func (rs *remoteStore) get(path string) (model.Snapshot, bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	snap, ok := rs.puts[path]
	return snap, ok
}

func openRepo(t *testing.T) repository.Repository {
	t.Helper()
	repo, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "tasks.db"), log.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

var sampleTasks = []model.Task{
	{ID: "t1", Title: "Standup", Due: "2024-05-01", StartTime: "09:00", EndTime: "09:30", Priority: model.PriorityHigh, Project: "Work"},
	{ID: "t2", Title: "Groceries", Due: "2024-05-01", Priority: model.PriorityLow, Project: "Home"},
	{ID: "t3", Title: "Old call", Due: "2024-04-01", StartTime: "10:00", EndTime: "11:00", Priority: model.PriorityLow, Project: "Work"},
	{ID: "t4", Title: "Done call", Due: "2024-05-02", StartTime: "10:00", EndTime: "11:00", Priority: model.PriorityLow, Project: "Work", Done: true},
}

func TestPush(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)
	require.NoError(t, repo.CreateTasks(ctx, "u-1", sampleTasks))
	require.NoError(t, repo.UpsertProfile(ctx, "u-1", model.Profile{Name: "Alex"}))

	rs, ts := newRemote(t)
	uc := usecase.New(log.NewNop(), repo, nil, ts.Client(), remotesync.Config{RemoteURL: ts.URL + "/"})

	require.NoError(t, uc.Push(ctx, "u-1"))

	snap, ok := rs.get("/data/u-1.json")
	require.True(t, ok)
	assert.Equal(t, model.SnapshotVersionSync, snap.Version)
	assert.Equal(t, "Alex", snap.Name)
	assert.NotEmpty(t, snap.LastSync)
	assert.Len(t, snap.Tasks, 4)
}

func TestPush_Retries(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)

	t.Run("retries server errors", func(t *testing.T) {
		rs, ts := newRemote(t, http.StatusInternalServerError, http.StatusBadGateway)
		uc := usecase.New(log.NewNop(), repo, nil, ts.Client(), remotesync.Config{RemoteURL: ts.URL})

		require.NoError(t, uc.Push(ctx, "u-1"))
		assert.Equal(t, int32(3), rs.putHits.Load())
	})

	t.Run("gives up after three attempts", func(t *testing.T) {
		rs, ts := newRemote(t, 500, 500, 500, 500)
		uc := usecase.New(log.NewNop(), repo, nil, ts.Client(), remotesync.Config{RemoteURL: ts.URL})

		err := uc.Push(ctx, "u-1")
		assert.True(t, errors.Is(err, remotesync.ErrRemote))
		assert.Equal(t, int32(3), rs.putHits.Load())
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		rs, ts := newRemote(t, http.StatusForbidden)
		uc := usecase.New(log.NewNop(), repo, nil, ts.Client(), remotesync.Config{RemoteURL: ts.URL})

		assert.Error(t, uc.Push(ctx, "u-1"))
		assert.Equal(t, int32(1), rs.putHits.Load())
	})
}

func TestNotify_Debounces(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)
	require.NoError(t, repo.CreateTasks(ctx, "u-1", sampleTasks[:1]))

	rs, ts := newRemote(t)
	uc := usecase.New(log.NewNop(), repo, nil, ts.Client(), remotesync.Config{
		RemoteURL: ts.URL,
		Debounce:  50 * time.Millisecond,
	})
	defer uc.Stop(ctx)

	for i := 0; i < 5; i++ {
		uc.Notify("u-1")
	}

	require.Eventually(t, func() bool { return rs.putHits.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), rs.putHits.Load())
}

func TestFetch(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)
	require.NoError(t, repo.CreateTasks(ctx, "u-1", sampleTasks))

	_, ts := newRemote(t)
	uc := usecase.New(log.NewNop(), repo, nil, ts.Client(), remotesync.Config{RemoteURL: ts.URL})

	_, err := uc.Fetch(ctx, model.Scope{UserID: "u-1"})
	assert.True(t, errors.Is(err, remotesync.ErrRemoteNotFound))

	require.NoError(t, uc.Push(ctx, "u-1"))
	snap, err := uc.Fetch(ctx, model.Scope{UserID: "u-1"})
	require.NoError(t, err)
	assert.Len(t, snap.Tasks, 4)
}

func TestFetch_TooLarge(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)
	require.NoError(t, repo.CreateTasks(ctx, "u-1", sampleTasks))

	_, ts := newRemote(t)
	uc := usecase.New(log.NewNop(), repo, nil, ts.Client(), remotesync.Config{RemoteURL: ts.URL, MaxSnapshotBytes: 64})
	require.NoError(t, uc.Push(ctx, "u-1"))

	_, err := uc.Fetch(ctx, model.Scope{UserID: "u-1"})
	assert.True(t, errors.Is(err, remotesync.ErrRemote))
	assert.Contains(t, err.Error(), "exceeds 64 bytes")
}

func TestDisabled(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(log.NewNop(), openRepo(t), nil, nil, remotesync.Config{Schedule: "@every 1m"})

	assert.True(t, errors.Is(uc.Push(ctx, "u-1"), remotesync.ErrDisabled))
	_, err := uc.Fetch(ctx, model.Scope{UserID: "u-1"})
	assert.True(t, errors.Is(err, remotesync.ErrDisabled))
	uc.Notify("u-1")
	assert.NoError(t, uc.Start(ctx))
	uc.Stop(ctx)
}

func TestStart_InvalidSchedule(t *testing.T) {
	_, ts := newRemote(t)
	uc := usecase.New(log.NewNop(), openRepo(t), nil, ts.Client(), remotesync.Config{RemoteURL: ts.URL, Schedule: "every now and then"})
	assert.Error(t, uc.Start(context.Background()))
}

func TestSweep(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)

	rs, ts := newRemote(t, http.StatusBadRequest)
	uc := usecase.New(log.NewNop(), repo, nil, ts.Client(), remotesync.Config{RemoteURL: ts.URL})
	uc.SetLastSweep(0)

	require.NoError(t, repo.CreateTasks(ctx, "u-1", sampleTasks[:1]))
	require.NoError(t, repo.CreateTasks(ctx, "u-2", sampleTasks[:2]))

	// The first PUT (sorted: u-1) fails and is remembered.
	uc.Sweep(ctx)
	_, ok := rs.get("/data/u-1.json")
	assert.False(t, ok)
	snap, ok := rs.get("/data/u-2.json")
	require.True(t, ok)
	assert.Len(t, snap.Tasks, 2)

	// Nothing changed since, but u-1 is retried.
	uc.Sweep(ctx)
	_, ok = rs.get("/data/u-1.json")
	assert.True(t, ok)
	assert.Equal(t, int32(3), rs.putHits.Load())

	uc.Sweep(ctx)
	assert.Equal(t, int32(3), rs.putHits.Load())
}

type fakeCalendar struct {
	existing []gcalendar.Event
	upserts  []gcalendar.UpsertEventRequest
	deleted  []string
}

func (f *fakeCalendar) UpsertEvent(ctx context.Context, req gcalendar.UpsertEventRequest) (*gcalendar.Event, error) {
	f.upserts = append(f.upserts, req)
	return &gcalendar.Event{ID: req.EventID}, nil
}

func (f *fakeCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	f.deleted = append(f.deleted, eventID)
	return nil
}

func (f *fakeCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	return f.existing, nil
}

func TestPush_MirrorsCalendar(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)
	require.NoError(t, repo.CreateTasks(ctx, "u-1", sampleTasks))

	keep := gcalendar.EventID("u-1", "t1")
	cal := &fakeCalendar{existing: []gcalendar.Event{{ID: keep}, {ID: "tfstale"}}}
	uc := usecase.New(log.NewNop(), repo, cal, nil, remotesync.Config{Timezone: "UTC", CalendarID: "primary"})
	uc.SetNow(func() time.Time { return time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC) })

	require.NoError(t, uc.Push(ctx, "u-1"))

	require.Len(t, cal.upserts, 1)
	up := cal.upserts[0]
	assert.Equal(t, keep, up.EventID)
	assert.Equal(t, "u-1", up.Owner)
	assert.Equal(t, "Standup", up.Summary)
	assert.Equal(t, "high priority • Work", up.Description)
	assert.Equal(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), up.StartTime)
	assert.Equal(t, time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC), up.EndTime)

	assert.Equal(t, []string{"tfstale"}, cal.deleted)
}
