package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskflow/internal/model"
	"taskflow/internal/task"
	"taskflow/internal/task/repository"
	"taskflow/internal/task/scheduler"
	"taskflow/pkg/datemath"
)

// Export returns the user's full data as a backup snapshot.
func (uc *implUseCase) Export(ctx context.Context, sc model.Scope) (model.Snapshot, error) {
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Export.ListTasks: user=%s: %v", sc.UserID, err)
		return model.Snapshot{}, err
	}

	p, err := uc.GetProfile(ctx, sc)
	if err != nil {
		return model.Snapshot{}, err
	}

	return model.Snapshot{
		Tasks:          tasks,
		Name:           p.Name,
		ProfilePicture: p.ProfilePicture,
		ExportDate:     uc.now().UTC().Format(time.RFC3339),
		Version:        model.SnapshotVersionExport,
	}, nil
}

// Import replaces the user's tasks when the snapshot carries a task list, and
// the profile fields that are non-empty.
func (uc *implUseCase) Import(ctx context.Context, sc model.Scope, snap model.Snapshot) (task.ImportOutput, error) {
	name := strings.TrimSpace(snap.Name)
	picture := strings.TrimSpace(snap.ProfilePicture)
	if snap.Tasks == nil && name == "" && picture == "" {
		return task.ImportOutput{}, fmt.Errorf("%w: nothing to import", task.ErrInvalidImport)
	}

	var out task.ImportOutput
	if snap.Tasks != nil {
		tasks, err := uc.normalizeImport(snap.Tasks)
		if err != nil {
			return task.ImportOutput{}, err
		}
		if err := uc.repo.ReplaceTasks(ctx, sc.UserID, tasks); err != nil {
			uc.l.Errorf(ctx, "uc.Import.ReplaceTasks: user=%s: %v", sc.UserID, err)
			return task.ImportOutput{}, err
		}
		out.TaskCount = len(tasks)
	}

	if name != "" || picture != "" {
		if _, err := uc.UpdateProfile(ctx, sc, task.UpdateProfileInput{Name: name, ProfilePicture: picture}); err != nil {
			return task.ImportOutput{}, err
		}
		out.ProfileUpdated = true
	}

	uc.l.Infof(ctx, "uc.Import: user=%s tasks=%d profile=%t", sc.UserID, out.TaskCount, out.ProfileUpdated)
	uc.notify(sc.UserID)
	return out, nil
}

func (uc *implUseCase) normalizeImport(in []model.Task) ([]model.Task, error) {
	seen := make(map[string]struct{}, len(in))
	out := make([]model.Task, 0, len(in))
	for i, t := range in {
		t.Title = strings.TrimSpace(t.Title)
		if t.Title == "" {
			return nil, fmt.Errorf("%w: task %d has no title", task.ErrInvalidImport, i)
		}
		if _, err := datemath.ParseDate(t.Due, uc.dateMath.Location()); err != nil {
			return nil, fmt.Errorf("%w: task %d: %v", task.ErrInvalidImport, i, err)
		}
		if err := scheduler.ValidateTimeRange(t.StartTime, t.EndTime); err != nil {
			return nil, fmt.Errorf("%w: task %d: %v", task.ErrInvalidImport, i, err)
		}
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", task.ErrInvalidImport, t.ID)
		}
		seen[t.ID] = struct{}{}
		if t.Priority == "" {
			t.Priority = model.PriorityMedium
		}
		if !t.Priority.Valid() {
			return nil, fmt.Errorf("%w: task %d: unknown priority %q", task.ErrInvalidImport, i, t.Priority)
		}
		rec, ok := model.ParseRecurrence(string(t.Recurring))
		if !ok {
			return nil, fmt.Errorf("%w: task %d: unknown recurrence %q", task.ErrInvalidImport, i, t.Recurring)
		}
		t.Recurring = rec
		for _, d := range t.Weekdays {
			if !d.Valid() {
				return nil, fmt.Errorf("%w: task %d: unknown weekday %q", task.ErrInvalidImport, i, d)
			}
		}
		if t.Project == "" {
			t.Project = model.DefaultProject
		}
		out = append(out, t)
	}
	return out, nil
}
