package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"taskflow/internal/model"
	remotesync "taskflow/internal/sync"
	"taskflow/internal/task/repository"
)

// Push uploads a fresh snapshot and mirrors the calendar. A failed user is
// remembered and retried by the next sweep.
func (uc *implUseCase) Push(ctx context.Context, userID string) error {
	if !uc.enabled() {
		return remotesync.ErrDisabled
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{UserID: userID})
	if err != nil {
		return err
	}

	var errs []error
	if uc.cfg.RemoteURL != "" {
		if err := uc.pushSnapshot(ctx, userID, tasks); err != nil {
			errs = append(errs, err)
		}
	}
	if uc.calendar != nil {
		if err := uc.mirrorCalendar(ctx, userID, tasks); err != nil {
			errs = append(errs, err)
		}
	}

	uc.mu.Lock()
	if len(errs) > 0 {
		uc.failed[userID] = struct{}{}
	} else {
		delete(uc.failed, userID)
	}
	uc.mu.Unlock()

	if err := errors.Join(errs...); err != nil {
		return err
	}
	uc.l.Debugf(ctx, "sync.Push: user=%s tasks=%d", userID, len(tasks))
	return nil
}

func (uc *implUseCase) pushSnapshot(ctx context.Context, userID string, tasks []model.Task) error {
	profile, err := uc.repo.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	body, err := json.Marshal(model.Snapshot{
		Tasks:          tasks,
		Name:           profile.Name,
		ProfilePicture: profile.ProfilePicture,
		LastSync:       uc.now().UTC().Format(time.RFC3339),
		Version:        model.SnapshotVersionSync,
	})
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	target := uc.dataURL(userID)
	backoff := initialBackoff
	var lastErr error
	for attempt := 1; attempt <= maxPushAttempts; attempt++ {
		retry, err := uc.put(ctx, target, body)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retry || attempt == maxPushAttempts {
			break
		}

		uc.l.Warnf(ctx, "sync.Push: user=%s attempt %d/%d failed: %v", userID, attempt, maxPushAttempts, err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return lastErr
}

// put reports whether a failure is worth retrying.
func (uc *implUseCase) put(ctx context.Context, target string, body []byte) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := uc.client.Do(req)
	if err != nil {
		return ctx.Err() == nil, fmt.Errorf("%w: %v", remotesync.ErrRemote, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return false, nil
	}
	err = fmt.Errorf("%w: PUT %s: status %d", remotesync.ErrRemote, target, resp.StatusCode)
	return resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests, err
}

func (uc *implUseCase) dataURL(userID string) string {
	return uc.cfg.RemoteURL + "/data/" + url.PathEscape(userID) + ".json"
}
