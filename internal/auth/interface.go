package auth

import (
	"context"

	"taskflow/internal/model"
)

// UseCase defines the business logic interface for sign-in and sessions.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Login(ctx context.Context, input LoginInput) (Session, error)
	Logout(ctx context.Context, token string) error
	// Authenticate resolves a session token to the scope it was issued for.
	Authenticate(ctx context.Context, token string) (model.Scope, error)
	// Register always fails with ErrRegistrationDisabled.
	Register(ctx context.Context, input RegisterInput) error
}
