package sync

import "errors"

var (
	ErrDisabled       = errors.New("remote sync is not configured")
	ErrRemoteNotFound = errors.New("no remote data for user")
	ErrRemote         = errors.New("remote store request failed")
)
