package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"taskflow/internal/auth"
	"taskflow/internal/model"
)

// Login checks credentials against the users file and issues a session.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.Session, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return auth.Session{}, auth.ErrInvalidCredentials
	}

	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login.GetByUsername: %v", err)
		return auth.Session{}, err
	}
	if user.ID == "" {
		uc.l.Warnf(ctx, "uc.Login: unknown user %q", username)
		return auth.Session{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		uc.l.Warnf(ctx, "uc.Login: wrong password for %q", username)
		return auth.Session{}, auth.ErrInvalidCredentials
	}

	now := uc.now()
	sess := auth.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		LoginAt:   now,
		ExpiresAt: now.Add(uc.ttl),
	}
	uc.sessions.Add(sess.Token, sess)

	uc.l.Infof(ctx, "uc.Login: user=%s signed in", user.ID)
	return sess, nil
}

// Logout drops the session. Unknown tokens are ignored.
func (uc *implUseCase) Logout(ctx context.Context, token string) error {
	uc.sessions.Remove(token)
	return nil
}

func (uc *implUseCase) Authenticate(ctx context.Context, token string) (model.Scope, error) {
	if token == "" {
		return model.Scope{}, auth.ErrUnauthorized
	}
	sess, ok := uc.sessions.Get(token)
	if !ok || !uc.now().Before(sess.ExpiresAt) {
		return model.Scope{}, auth.ErrUnauthorized
	}
	return model.Scope{UserID: sess.UserID, Username: sess.Username}, nil
}

func (uc *implUseCase) Register(ctx context.Context, input auth.RegisterInput) error {
	return auth.ErrRegistrationDisabled
}

// HashPassword returns the bcrypt hash stored in the users file.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
