package sqlite

import (
	"strings"

	repo "taskflow/internal/task/repository"
)

// buildListQuery builds the WHERE clause + args for ListTasks.
// All non-empty fields are applied as AND conditions.
func buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions := []string{"user_id = ?"}
	args := []any{opt.UserID}

	if opt.Due != "" {
		conditions = append(conditions, "due = ?")
		args = append(args, opt.Due)
	}
	if opt.DueFrom != "" {
		conditions = append(conditions, "due >= ?")
		args = append(args, opt.DueFrom)
	}
	if opt.DueTo != "" {
		conditions = append(conditions, "due <= ?")
		args = append(args, opt.DueTo)
	}
	if opt.Done != nil {
		conditions = append(conditions, "done = ?")
		args = append(args, boolToInt(*opt.Done))
	}
	if opt.Priority != "" {
		conditions = append(conditions, "priority = ?")
		args = append(args, opt.Priority)
	}

	return strings.Join(conditions, " AND "), args
}
