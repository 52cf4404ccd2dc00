package auth

import "time"

// LoginInput holds sign-in credentials.
type LoginInput struct {
	Username string
	Password string
}

// RegisterInput is accepted for API compatibility only.
type RegisterInput struct {
	Username string
	Password string
}

// Session is an issued bearer token.
type Session struct {
	Token     string
	UserID    string
	Username  string
	LoginAt   time.Time
	ExpiresAt time.Time
}
