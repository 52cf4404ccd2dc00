package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"taskflow/internal/model"
	repo "taskflow/internal/task/repository"
)

const taskColumns = `id, title, due, start_time, end_time, priority, project, done, recurring, weekdays`

// CreateTasks inserts all tasks in one transaction. A clashing id aborts the
// whole batch with ErrDuplicateID.
func (r *implRepository) CreateTasks(ctx context.Context, userID string, tasks []model.Task) error {
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		if err := r.insertTasks(ctx, tx, userID, tasks); err != nil {
			return err
		}
		return r.touch(ctx, tx, userID)
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateID) {
			return err
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTasks"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// GetTask returns a zero-value Task when not found.
func (r *implRepository) GetTask(ctx context.Context, userID, id string) (model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? AND id = ?`
	t, err := scanTask(r.db.QueryRowContext(ctx, query, userID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns the tasks matching opt in insertion order.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	where, args := buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY seq`, taskColumns, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateDone sets the done flag and returns the updated task, or a zero-value
// Task when the id is unknown.
func (r *implRepository) UpdateDone(ctx context.Context, opt repo.UpdateDoneOptions) (model.Task, error) {
	var updated model.Task
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE tasks SET done = ?, updated_at = ? WHERE user_id = ? AND id = ?`,
			boolToInt(opt.Done), r.now().UnixMilli(), opt.UserID, opt.ID,
		)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil
		}
		query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? AND id = ?`
		if updated, err = scanTask(tx.QueryRowContext(ctx, query, opt.UserID, opt.ID)); err != nil {
			return err
		}
		return r.touch(ctx, tx, opt.UserID)
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateDone"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return updated, nil
}

// DeleteTask removes one task and reports whether it existed.
func (r *implRepository) DeleteTask(ctx context.Context, userID, id string) (bool, error) {
	var deleted bool
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE user_id = ? AND id = ?`, userID, id)
		if err != nil {
			return err
		}
		n, _ := res.RowsAffected()
		if deleted = n > 0; !deleted {
			return nil
		}
		return r.touch(ctx, tx, userID)
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	return deleted, nil
}

// ReplaceTasks swaps the user's whole collection atomically.
func (r *implRepository) ReplaceTasks(ctx context.Context, userID string, tasks []model.Task) error {
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE user_id = ?`, userID); err != nil {
			return err
		}
		if err := r.insertTasks(ctx, tx, userID, tasks); err != nil {
			return err
		}
		return r.touch(ctx, tx, userID)
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateID) {
			return err
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReplaceTasks"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// ChangedSince lists users whose data changed strictly after sinceMillis.
func (r *implRepository) ChangedSince(ctx context.Context, sinceMillis int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id FROM user_changes WHERE changed_at > ? ORDER BY user_id`, sinceMillis)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ChangedSince"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, repo.ErrFailedToList
		}
		users = append(users, id)
	}
	return users, rows.Err()
}

func (r *implRepository) insertTasks(ctx context.Context, tx *sql.Tx, userID string, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (user_id, id, title, due, start_time, end_time, priority, project, done, recurring, weekdays, seq, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM tasks), ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := r.now().UnixMilli()
	for _, t := range tasks {
		_, err := stmt.ExecContext(ctx,
			userID, t.ID, t.Title, t.Due, t.StartTime, t.EndTime, string(t.Priority), t.Project,
			boolToInt(t.Done), string(t.Recurring), joinWeekdays(t.Weekdays), now,
		)
		if err != nil {
			if isUniqueConstraintError(err) {
				return fmt.Errorf("%w: %s", repo.ErrDuplicateID, t.ID)
			}
			return err
		}
	}
	return nil
}

func (r *implRepository) touch(ctx context.Context, tx *sql.Tx, userID string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO user_changes (user_id, changed_at) VALUES (?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET changed_at = excluded.changed_at`,
		userID, r.now().UnixMilli(),
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t                   model.Task
		priority, recurring string
		weekdays            string
		done                int
	)
	err := row.Scan(&t.ID, &t.Title, &t.Due, &t.StartTime, &t.EndTime, &priority, &t.Project, &done, &recurring, &weekdays)
	if err != nil {
		return model.Task{}, err
	}
	t.Priority = model.Priority(priority)
	t.Recurring = model.Recurrence(recurring)
	t.Done = done != 0
	t.Weekdays = splitWeekdays(weekdays)
	return t, nil
}

func joinWeekdays(days []model.Weekday) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = string(d)
	}
	return strings.Join(parts, ",")
}

func splitWeekdays(s string) []model.Weekday {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	days := make([]model.Weekday, len(parts))
	for i, p := range parts {
		days[i] = model.Weekday(p)
	}
	return days
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
