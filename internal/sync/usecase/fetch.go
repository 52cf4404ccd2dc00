package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"taskflow/internal/model"
	remotesync "taskflow/internal/sync"
)

// Fetch downloads the remote snapshot of sc's user.
func (uc *implUseCase) Fetch(ctx context.Context, sc model.Scope) (model.Snapshot, error) {
	if uc.cfg.RemoteURL == "" {
		return model.Snapshot{}, remotesync.ErrDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uc.dataURL(sc.UserID), nil)
	if err != nil {
		return model.Snapshot{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := uc.client.Do(req)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: %v", remotesync.ErrRemote, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return model.Snapshot{}, remotesync.ErrRemoteNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return model.Snapshot{}, fmt.Errorf("%w: GET status %d", remotesync.ErrRemote, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, uc.cfg.MaxSnapshotBytes+1))
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: read snapshot: %v", remotesync.ErrRemote, err)
	}
	if int64(len(body)) > uc.cfg.MaxSnapshotBytes {
		return model.Snapshot{}, fmt.Errorf("%w: snapshot exceeds %d bytes", remotesync.ErrRemote, uc.cfg.MaxSnapshotBytes)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: decode snapshot: %v", remotesync.ErrRemote, err)
	}

	uc.l.Infof(ctx, "sync.Fetch: user=%s tasks=%d version=%s", sc.UserID, len(snap.Tasks), snap.Version)
	return snap, nil
}
