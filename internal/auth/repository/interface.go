package repository

import (
	"context"

	"taskflow/internal/model"
)

// UserRepository looks up accounts.
type UserRepository interface {
	// GetByUsername returns a zero-value User when the username is unknown.
	GetByUsername(ctx context.Context, username string) (model.User, error)
}
