package usecase

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	remotesync "taskflow/internal/sync"
	"taskflow/internal/task/repository"
	pkgLog "taskflow/pkg/log"
)

const (
	maxPushAttempts = 3
	initialBackoff  = 500 * time.Millisecond
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	calendar remotesync.Calendar
	client   *http.Client
	cfg      remotesync.Config
	loc      *time.Location
	parser   cron.Parser
	now      func() time.Time

	mu        sync.Mutex
	timers    map[string]*time.Timer
	failed    map[string]struct{}
	lastSweep int64
	stopped   bool
	c         *cron.Cron
	runCtx    context.Context
	runCancel context.CancelFunc
	wg        sync.WaitGroup
}

// New creates the sync UseCase. calendar may be nil; a nil client means http.DefaultClient.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	calendar remotesync.Calendar,
	client *http.Client,
	cfg remotesync.Config,
) *implUseCase {
	if cfg.Debounce <= 0 {
		cfg.Debounce = remotesync.DefaultDebounce
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = remotesync.DefaultTimeout
	}
	if cfg.MaxSnapshotBytes <= 0 {
		cfg.MaxSnapshotBytes = remotesync.DefaultMaxSnapshotBytes
	}
	cfg.RemoteURL = strings.TrimRight(cfg.RemoteURL, "/")
	if client == nil {
		client = http.DefaultClient
	}

	loc := time.Local
	if cfg.Timezone != "" {
		if l2, err := time.LoadLocation(cfg.Timezone); err == nil {
			loc = l2
		}
	}

	runCtx, cancel := context.WithCancel(context.Background())
	return &implUseCase{
		l:         l,
		repo:      repo,
		calendar:  calendar,
		client:    client,
		cfg:       cfg,
		loc:       loc,
		parser:    cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
		now:       time.Now,
		timers:    make(map[string]*time.Timer),
		failed:    make(map[string]struct{}),
		lastSweep: time.Now().UnixMilli(),
		runCtx:    runCtx,
		runCancel: cancel,
	}
}

var _ remotesync.UseCase = (*implUseCase)(nil)

func (uc *implUseCase) enabled() bool {
	return uc.cfg.RemoteURL != "" || uc.calendar != nil
}
