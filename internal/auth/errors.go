package auth

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrRegistrationDisabled = errors.New("registration is disabled")
)
