package usecase

import (
	"strings"
	"time"

	"taskflow/pkg/datemath"
)

// reference resolves the caller-supplied time, falling back to the clock, in
// the configured calendar location.
func (uc *implUseCase) reference(t time.Time) time.Time {
	if t.IsZero() {
		t = uc.now()
	}
	return t.In(uc.dateMath.Location())
}

func (uc *implUseCase) today(t time.Time) string {
	return datemath.FormatDate(uc.reference(t))
}

func (uc *implUseCase) notify(userID string) {
	if uc.notifier != nil {
		uc.notifier.Notify(userID)
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
