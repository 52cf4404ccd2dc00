package repository

// ListTasksOptions holds filter parameters for listing tasks.
// All non-empty fields are applied as AND conditions.
type ListTasksOptions struct {
	UserID   string
	Due      string // exact ISO date
	DueFrom  string // inclusive
	DueTo    string // inclusive
	Done     *bool
	Priority string
}

// UpdateDoneOptions sets the completion flag of one task.
type UpdateDoneOptions struct {
	UserID string
	ID     string
	Done   bool
}
