package sync

import "time"

// Defaults applied when Config leaves a field zero.
const (
	DefaultDebounce = 2 * time.Second
	DefaultSchedule = "@every 15m"
	DefaultTimeout  = 30 * time.Second

	DefaultMaxSnapshotBytes = 32 << 20
)

// Config controls remote pushes.
type Config struct {
	// RemoteURL is the base URL snapshots are stored under as /data/{userID}.json.
	// Empty disables remote sync.
	RemoteURL string
	Debounce  time.Duration
	// Schedule is a cron spec for the sweep that re-pushes changed users.
	Schedule string
	Timeout  time.Duration
	// MaxSnapshotBytes caps the size of a downloaded snapshot.
	MaxSnapshotBytes int64

	CalendarID string
	Timezone   string
}
