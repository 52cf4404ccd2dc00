package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskflow/internal/model"
	"taskflow/pkg/datemath"
	"taskflow/pkg/gcalendar"
)

// mirrorCalendar upserts one event per upcoming timed, pending task and
// deletes the user's events that no longer match such a task.
func (uc *implUseCase) mirrorCalendar(ctx context.Context, userID string, tasks []model.Task) error {
	today := uc.now().In(uc.loc)
	todayISO := datemath.FormatDate(today)

	wanted := make(map[string]struct{})
	var errs []error
	for _, t := range tasks {
		if t.Done || t.StartTime == "" || t.EndTime == "" || t.Due < todayISO {
			continue
		}
		start, end, err := uc.eventTimes(t)
		if err != nil {
			uc.l.Warnf(ctx, "sync.mirrorCalendar: skip task %s: %v", t.ID, err)
			continue
		}

		id := gcalendar.EventID(userID, t.ID)
		wanted[id] = struct{}{}
		_, err = uc.calendar.UpsertEvent(ctx, gcalendar.UpsertEventRequest{
			CalendarID:  uc.cfg.CalendarID,
			EventID:     id,
			Owner:       userID,
			Summary:     t.Title,
			Description: fmt.Sprintf("%s priority • %s", t.Priority, t.Project),
			StartTime:   start,
			EndTime:     end,
			Timezone:    uc.loc.String(),
		})
		if err != nil {
			errs = append(errs, err)
		}
	}

	existing, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.cfg.CalendarID,
		Owner:      userID,
		TimeMin:    datemath.NewParserIn(uc.loc).StartOfDay(today),
	})
	if err != nil {
		return errors.Join(append(errs, err)...)
	}
	for _, ev := range existing {
		if _, keep := wanted[ev.ID]; keep {
			continue
		}
		if err := uc.calendar.DeleteEvent(ctx, uc.cfg.CalendarID, ev.ID); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (uc *implUseCase) eventTimes(t model.Task) (start, end time.Time, err error) {
	day, err := datemath.ParseDate(t.Due, uc.loc)
	if err != nil {
		return start, end, err
	}
	s, err := datemath.ParseClock(t.StartTime)
	if err != nil {
		return start, end, err
	}
	e, err := datemath.ParseClock(t.EndTime)
	if err != nil {
		return start, end, err
	}
	start = time.Date(day.Year(), day.Month(), day.Day(), s/60, s%60, 0, 0, uc.loc)
	end = time.Date(day.Year(), day.Month(), day.Day(), e/60, e%60, 0, 0, uc.loc)
	return start, end, nil
}
