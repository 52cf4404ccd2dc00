package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"taskflow/internal/auth"
	"taskflow/internal/auth/repository"
	pkgLog "taskflow/pkg/log"
)

const (
	defaultSessionTTL      = 24 * time.Hour
	defaultSessionCapacity = 1000
)

// Config tunes the session store.
type Config struct {
	SessionTTL      time.Duration
	SessionCapacity int
}

type implUseCase struct {
	l        pkgLog.Logger
	users    repository.UserRepository
	sessions *expirable.LRU[string, auth.Session]
	ttl      time.Duration
	now      func() time.Time
}

// New creates a new auth UseCase instance.
func New(l pkgLog.Logger, users repository.UserRepository, cfg Config) *implUseCase {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.SessionCapacity <= 0 {
		cfg.SessionCapacity = defaultSessionCapacity
	}
	return &implUseCase{
		l:        l,
		users:    users,
		sessions: expirable.NewLRU[string, auth.Session](cfg.SessionCapacity, nil, cfg.SessionTTL),
		ttl:      cfg.SessionTTL,
		now:      time.Now,
	}
}

var _ auth.UseCase = (*implUseCase)(nil)
