package usecase

import (
	"context"
)

// Notify (re)starts the user's debounce timer. When it fires the snapshot is
// pushed in the background; failures are logged and retried by the sweep.
func (uc *implUseCase) Notify(userID string) {
	if !uc.enabled() || userID == "" {
		return
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.stopped {
		return
	}
	if t, ok := uc.timers[userID]; ok {
		t.Stop()
	}
	uc.timers[userID] = timeAfterFunc(uc.cfg.Debounce, func() {
		uc.mu.Lock()
		delete(uc.timers, userID)
		if uc.stopped {
			uc.mu.Unlock()
			return
		}
		uc.wg.Add(1)
		uc.mu.Unlock()

		defer uc.wg.Done()
		uc.pushInBackground(userID)
	})
}

func (uc *implUseCase) pushInBackground(userID string) {
	ctx, cancel := context.WithTimeout(uc.runCtx, uc.cfg.Timeout)
	defer cancel()

	if err := uc.Push(ctx, userID); err != nil {
		uc.l.Warnf(ctx, "sync.Notify: push for user=%s failed, will retry on next sweep: %v", userID, err)
	}
}
