package usecase

import (
	"context"
	"time"
)

// SetNow pins the use case clock.
func (uc *implUseCase) SetNow(fn func() time.Time) { uc.now = fn }

// Sweep runs one sweep synchronously.
func (uc *implUseCase) Sweep(ctx context.Context) { uc.sweep(ctx) }

// SetLastSweep moves the sweep watermark.
func (uc *implUseCase) SetLastSweep(millis int64) {
	uc.mu.Lock()
	uc.lastSweep = millis
	uc.mu.Unlock()
}
