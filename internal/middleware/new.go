package middleware

import (
	"context"

	"taskflow/internal/model"
	"taskflow/pkg/log"
)

// Authenticator resolves bearer tokens to a scope.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (model.Scope, error)
}

type Middleware struct {
	l       log.Logger
	auth    Authenticator
	limiter *rateLimiter
}

// New builds the shared middleware set. loginRatePerMin bounds sign-in
// attempts per client address.
func New(l log.Logger, auth Authenticator, loginRatePerMin int) Middleware {
	return Middleware{
		l:       l,
		auth:    auth,
		limiter: newRateLimiter(loginRatePerMin),
	}
}
