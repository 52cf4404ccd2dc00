package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/robfig/cron/v3"
)

var timeAfterFunc = time.AfterFunc

// Start registers the sweep on a cron schedule. It is a no-op when sync is
// disabled or no schedule is configured.
func (uc *implUseCase) Start(ctx context.Context) error {
	if !uc.enabled() || uc.cfg.Schedule == "" {
		uc.l.Infof(ctx, "sync.Start: periodic sweep disabled")
		return nil
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.c != nil || uc.stopped {
		return nil
	}

	c := cron.New(cron.WithParser(uc.parser), cron.WithLocation(uc.loc))
	if _, err := c.AddFunc(uc.cfg.Schedule, func() { uc.sweep(uc.runCtx) }); err != nil {
		return fmt.Errorf("invalid sync schedule %q: %w", uc.cfg.Schedule, err)
	}
	uc.c = c
	c.Start()

	uc.l.Infof(ctx, "sync.Start: sweep scheduled %q", uc.cfg.Schedule)
	return nil
}

// Stop stops the sweep, cancels pending debounced pushes and waits for
// running pushes or ctx, whichever ends first.
func (uc *implUseCase) Stop(ctx context.Context) {
	uc.mu.Lock()
	uc.stopped = true
	c := uc.c
	uc.c = nil
	for id, t := range uc.timers {
		t.Stop()
		delete(uc.timers, id)
	}
	uc.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
	defer uc.runCancel()

	done := make(chan struct{})
	go func() {
		uc.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		uc.l.Warnf(ctx, "sync.Stop: gave up waiting for running pushes: %v", ctx.Err())
	}
}

// sweep pushes every user changed since the previous sweep plus every user
// whose last push failed.
func (uc *implUseCase) sweep(ctx context.Context) {
	started := uc.now().UnixMilli()

	uc.mu.Lock()
	since := uc.lastSweep
	users := make(map[string]struct{}, len(uc.failed))
	for id := range uc.failed {
		users[id] = struct{}{}
	}
	uc.mu.Unlock()

	changed, err := uc.repo.ChangedSince(ctx, since)
	if err != nil {
		uc.l.Errorf(ctx, "sync.sweep: %v", err)
		return
	}
	for _, id := range changed {
		users[id] = struct{}{}
	}

	uc.mu.Lock()
	uc.lastSweep = started
	uc.mu.Unlock()

	ids := make([]string, 0, len(users))
	for id := range users {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var failed int
	for _, id := range ids {
		pushCtx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
		if err := uc.Push(pushCtx, id); err != nil {
			failed++
			uc.l.Warnf(ctx, "sync.sweep: user=%s: %v", id, err)
		}
		cancel()
	}
	if len(ids) > 0 {
		uc.l.Infof(ctx, "sync.sweep: pushed %d users, %d failed", len(ids)-failed, failed)
	}
}
