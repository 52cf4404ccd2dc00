package usecase

import "time"

// SetNow pins the use case clock.
func (uc *implUseCase) SetNow(fn func() time.Time) { uc.now = fn }
