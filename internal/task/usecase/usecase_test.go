package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/model"
	"taskflow/internal/task"
	"taskflow/internal/task/scheduler"
	"taskflow/internal/task/usecase"
	"taskflow/pkg/datemath"
)

func newUseCase(t *testing.T) (task.UseCase, *fakeRepo, *recordingNotifier) {
	t.Helper()
	repo := newFakeRepo()
	notifier := &recordingNotifier{}
	uc := usecase.New(&mockLogger{}, repo, datemath.NewParserIn(time.UTC), notifier)
	uc.SetNow(func() time.Time { return wednesday })
	return uc, repo, notifier
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		input     task.CreateInput
		wantErr   error
		wantCount int
		wantTitle string
		wantDue   string
	}{
		{name: "single task defaults to today", input: task.CreateInput{Title: "Pay rent"}, wantCount: 1, wantTitle: "Pay rent", wantDue: "2024-05-01"},
		{name: "relative due", input: task.CreateInput{Title: "Call mom", Due: "tomorrow"}, wantCount: 1, wantTitle: "Call mom", wantDue: "2024-05-02"},
		{name: "daily", input: task.CreateInput{Title: "Stretch", Due: "2024-05-01", Recurrence: "daily"}, wantCount: 30, wantTitle: "Stretch (Daily)", wantDue: "2024-05-01"},
		{name: "weekdays", input: task.CreateInput{Title: "Gym", Due: "2024-05-01", Recurrence: "customWeekdays", Weekdays: []string{"fri", "Mon"}},
			wantCount: 16, wantTitle: "Gym (Mon, Fri)", wantDue: "2024-05-03"},
		{name: "empty title", input: task.CreateInput{Title: "   "}, wantErr: task.ErrEmptyTitle},
		{name: "no weekdays", input: task.CreateInput{Title: "Gym", Recurrence: "weekdays"}, wantErr: task.ErrNoWeekdays},
		{name: "unknown weekday", input: task.CreateInput{Title: "Gym", Recurrence: "weekdays", Weekdays: []string{"funday"}}, wantErr: task.ErrInvalidTemplate},
		{name: "unknown priority", input: task.CreateInput{Title: "X", Priority: "urgent"}, wantErr: task.ErrInvalidTemplate},
		{name: "unknown recurrence", input: task.CreateInput{Title: "X", Recurrence: "monthly"}, wantErr: task.ErrInvalidTemplate},
		{name: "bad due", input: task.CreateInput{Title: "X", Due: "someday"}, wantErr: task.ErrInvalidTemplate},
		{name: "start after end", input: task.CreateInput{Title: "X", StartTime: "10:00", EndTime: "09:00"}, wantErr: scheduler.ErrInvalidTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, notifier := newUseCase(t)
			out, err := uc.Create(ctx, scope, tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Empty(t, repo.tasks[scope.UserID])
				assert.Empty(t, notifier.users)
				return
			}
			require.NoError(t, err)
			require.Len(t, out.Tasks, tt.wantCount)
			assert.Len(t, repo.tasks[scope.UserID], tt.wantCount)
			assert.Equal(t, tt.wantTitle, out.Tasks[0].Title)
			assert.Equal(t, tt.wantDue, out.Tasks[0].Due)
			assert.Equal(t, []string{scope.UserID}, notifier.users)
		})
	}
}

func TestCreate_StartAfterEndIsTaskError(t *testing.T) {
	uc, _, _ := newUseCase(t)
	_, err := uc.Create(context.Background(), scope, task.CreateInput{Title: "X", StartTime: "10:00", EndTime: "10:00"})
	assert.True(t, errors.Is(err, task.ErrInvalidTemplate))
}

func seed(repo *fakeRepo) {
	repo.tasks[scope.UserID] = []model.Task{
		{ID: "1", Title: "Write report", Due: "2024-05-01", Priority: model.PriorityHigh, Project: "Work"},
		{ID: "2", Title: "Standup", Due: "2024-05-01", StartTime: "09:00", EndTime: "09:30", Priority: model.PriorityMedium, Project: "Work"},
		{ID: "3", Title: "Groceries", Due: "2024-05-01", Priority: model.PriorityLow, Done: true},
		{ID: "4", Title: "Dentist", Due: "2024-04-29", StartTime: "14:00", EndTime: "15:00", Priority: model.PriorityHigh, Done: true},
		{ID: "5", Title: "Report review", Due: "2024-05-02", Priority: model.PriorityMedium},
	}
}

func ids(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestList(t *testing.T) {
	ctx := context.Background()
	uc, repo, _ := newUseCase(t)
	seed(repo)

	tests := []struct {
		name    string
		input   task.ListInput
		want    []string
		wantErr error
	}{
		{name: "all", input: task.ListInput{}, want: []string{"4", "2", "1", "3", "5"}},
		{name: "today", input: task.ListInput{Filter: "today", Now: wednesday}, want: []string{"2", "1", "3"}},
		{name: "done", input: task.ListInput{Filter: "done"}, want: []string{"4", "3"}},
		{name: "pending", input: task.ListInput{Filter: "pending"}, want: []string{"2", "1", "5"}},
		{name: "high", input: task.ListInput{Filter: "high"}, want: []string{"4", "1"}},
		{name: "query is case-insensitive", input: task.ListInput{Query: "REPORT"}, want: []string{"1", "5"}},
		{name: "unknown filter", input: task.ListInput{Filter: "urgent"}, wantErr: task.ErrInvalidFilter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.List(ctx, scope, tt.input)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(out.Tasks))
			assert.Equal(t, len(tt.want), out.Total)
		})
	}
}

func TestAgenda(t *testing.T) {
	ctx := context.Background()
	uc, repo, _ := newUseCase(t)
	seed(repo)

	out, err := uc.Agenda(ctx, scope, task.AgendaInput{Now: wednesday})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", out.Date)
	require.Len(t, out.Items, 3)

	assert.Equal(t, "2", out.Items[0].Task.ID)
	assert.Equal(t, "9:00 AM - 9:30 AM", out.Items[0].TimeDisplay)
	assert.Equal(t, "30 min", out.Items[0].Duration)
	assert.Equal(t, "medium priority • Work", out.Items[0].Description)

	assert.Equal(t, "All day", out.Items[1].TimeDisplay)
	assert.Empty(t, out.Items[1].Duration)

	assert.Equal(t, "✓ Completed", out.Items[2].TimeDisplay)
	assert.Equal(t, "low priority • General", out.Items[2].Description)

	_, err = uc.Agenda(ctx, scope, task.AgendaInput{Date: "05/01/2024"})
	assert.True(t, errors.Is(err, task.ErrInvalidDate))
}

func TestAgenda_Truncates(t *testing.T) {
	uc, repo, _ := newUseCase(t)
	for i := 0; i < 9; i++ {
		repo.tasks[scope.UserID] = append(repo.tasks[scope.UserID], model.Task{
			ID: string(rune('a' + i)), Title: "T", Due: "2024-05-01", Priority: model.PriorityLow,
		})
	}
	out, err := uc.Agenda(context.Background(), scope, task.AgendaInput{Date: "2024-05-01"})
	require.NoError(t, err)
	assert.Len(t, out.Items, scheduler.AgendaLimit)
}

func TestToggleAndDelete(t *testing.T) {
	ctx := context.Background()
	uc, repo, notifier := newUseCase(t)
	seed(repo)

	toggled, err := uc.Toggle(ctx, scope, "1")
	require.NoError(t, err)
	assert.True(t, toggled.Done)

	toggled, err = uc.Toggle(ctx, scope, "1")
	require.NoError(t, err)
	assert.False(t, toggled.Done)

	_, err = uc.Toggle(ctx, scope, "missing")
	assert.True(t, errors.Is(err, task.ErrTaskNotFound))

	require.NoError(t, uc.Delete(ctx, scope, "1"))
	assert.True(t, errors.Is(uc.Delete(ctx, scope, "1"), task.ErrTaskNotFound))

	// Another user cannot touch u1's tasks.
	_, err = uc.Toggle(ctx, model.Scope{UserID: "u2"}, "2")
	assert.True(t, errors.Is(err, task.ErrTaskNotFound))

	assert.Len(t, notifier.users, 3)
}

func TestStatsAndWeekly(t *testing.T) {
	ctx := context.Background()
	uc, repo, _ := newUseCase(t)
	seed(repo)

	stats, err := uc.Stats(ctx, scope, task.StatsInput{Now: wednesday})
	require.NoError(t, err)
	assert.Equal(t, task.StatsOutput{TotalToday: 3, Completed: 2, Pending: 3}, stats)

	weekly, err := uc.Weekly(ctx, scope, task.StatsInput{Now: wednesday})
	require.NoError(t, err)
	require.Len(t, weekly.Points, 7)

	assert.Equal(t, "2024-04-25", weekly.Points[0].Date)
	assert.Equal(t, "Thu", weekly.Points[0].Day)
	assert.Equal(t, "2024-05-01", weekly.Points[6].Date)
	assert.Equal(t, "Wed", weekly.Points[6].Day)

	assert.Equal(t, 1, weekly.Points[4].Value) // 2024-04-29
	assert.Equal(t, 1, weekly.Points[6].Value)
	for i, p := range weekly.Points {
		assert.Equal(t, i == 3, p.Highlight, "index %d", i)
	}
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newUseCase(t)

	p, err := uc.GetProfile(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, "alex", p.Name)

	p, err = uc.UpdateProfile(ctx, scope, task.UpdateProfileInput{Name: "Alex P."})
	require.NoError(t, err)
	assert.Equal(t, "Alex P.", p.Name)

	p, err = uc.UpdateProfile(ctx, scope, task.UpdateProfileInput{ProfilePicture: "data:image/png;base64,AA=="})
	require.NoError(t, err)
	assert.Equal(t, "Alex P.", p.Name)
	assert.Equal(t, "data:image/png;base64,AA==", p.ProfilePicture)
}

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	uc, repo, _ := newUseCase(t)
	seed(repo)

	snap, err := uc.Export(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, model.SnapshotVersionExport, snap.Version)
	assert.Equal(t, "2024-05-01T10:00:00Z", snap.ExportDate)
	assert.Len(t, snap.Tasks, 5)

	other := model.Scope{UserID: "u2"}
	out, err := uc.Import(ctx, other, snap)
	require.NoError(t, err)
	assert.Equal(t, 5, out.TaskCount)
	assert.True(t, out.ProfileUpdated)
	assert.Equal(t, ids(repo.tasks[scope.UserID]), ids(repo.tasks[other.UserID]))
	assert.Equal(t, model.DefaultProject, repo.tasks[other.UserID][2].Project)
}

func TestImport_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate ids", func(t *testing.T) {
		uc, repo, _ := newUseCase(t)
		seed(repo)
		_, err := uc.Import(ctx, scope, model.Snapshot{Tasks: []model.Task{
			{ID: "x", Title: "A", Due: "2024-05-01"},
			{ID: "x", Title: "B", Due: "2024-05-01"},
		}})
		assert.True(t, errors.Is(err, task.ErrInvalidImport))
		assert.Len(t, repo.tasks[scope.UserID], 5)
	})

	t.Run("missing ids get fresh ones", func(t *testing.T) {
		uc, repo, _ := newUseCase(t)
		_, err := uc.Import(ctx, scope, model.Snapshot{Tasks: []model.Task{
			{Title: "A", Due: "2024-05-01"},
			{Title: "B", Due: "2024-05-02"},
		}})
		require.NoError(t, err)
		got := repo.tasks[scope.UserID]
		require.Len(t, got, 2)
		assert.NotEmpty(t, got[0].ID)
		assert.NotEqual(t, got[0].ID, got[1].ID)
		assert.Equal(t, model.PriorityMedium, got[0].Priority)
		assert.Equal(t, model.DefaultProject, got[0].Project)
	})

	t.Run("bad due", func(t *testing.T) {
		uc, _, _ := newUseCase(t)
		_, err := uc.Import(ctx, scope, model.Snapshot{Tasks: []model.Task{{ID: "a", Title: "A", Due: "tomorrow"}}})
		assert.True(t, errors.Is(err, task.ErrInvalidImport))
	})

	t.Run("empty snapshot", func(t *testing.T) {
		uc, _, _ := newUseCase(t)
		_, err := uc.Import(ctx, scope, model.Snapshot{Version: "1.0"})
		assert.True(t, errors.Is(err, task.ErrInvalidImport))
	})

	t.Run("malformed tasks are rejected", func(t *testing.T) {
		cases := map[string]model.Task{
			"start after end":   {ID: "a", Title: "A", Due: "2024-05-01", StartTime: "10:00", EndTime: "09:00"},
			"start only":        {ID: "a", Title: "A", Due: "2024-05-01", StartTime: "08:00"},
			"malformed clock":   {ID: "a", Title: "A", Due: "2024-05-01", StartTime: "+1:00", EndTime: "zz"},
			"unknown priority":  {ID: "a", Title: "A", Due: "2024-05-01", Priority: "urgent"},
			"unknown recurring": {ID: "a", Title: "A", Due: "2024-05-01", Recurring: "hourly"},
			"unknown weekday":   {ID: "a", Title: "A", Due: "2024-05-01", Recurring: model.RecurrenceCustomWeekdays, Weekdays: []model.Weekday{"funday"}},
		}
		for name, tk := range cases {
			t.Run(name, func(t *testing.T) {
				uc, repo, _ := newUseCase(t)
				seed(repo)
				_, err := uc.Import(ctx, scope, model.Snapshot{Tasks: []model.Task{tk}})
				assert.True(t, errors.Is(err, task.ErrInvalidImport), "err=%v", err)
				assert.Len(t, repo.tasks[scope.UserID], 5)
			})
		}
	})

	t.Run("recurrence aliases are normalized", func(t *testing.T) {
		uc, repo, _ := newUseCase(t)
		_, err := uc.Import(ctx, scope, model.Snapshot{Tasks: []model.Task{
			{ID: "a", Title: "A", Due: "2024-05-01", StartTime: "09:00", EndTime: "09:30", Recurring: "daily"},
		}})
		require.NoError(t, err)
		got := repo.tasks[scope.UserID]
		require.Len(t, got, 1)
		assert.Equal(t, model.RecurrenceDaily, got[0].Recurring)
	})

	t.Run("profile only keeps tasks", func(t *testing.T) {
		uc, repo, _ := newUseCase(t)
		seed(repo)
		out, err := uc.Import(ctx, scope, model.Snapshot{Name: "New Name"})
		require.NoError(t, err)
		assert.Zero(t, out.TaskCount)
		assert.Len(t, repo.tasks[scope.UserID], 5)
		assert.Equal(t, "New Name", repo.profiles[scope.UserID].Name)
	})
}
