package repository

import "errors"

var (
	ErrFailedToLoad = errors.New("failed to load users")
	ErrInvalidUser  = errors.New("invalid user entry")
)
