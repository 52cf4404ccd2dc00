package http

import (
	"time"

	"taskflow/internal/auth"
)

type loginReq struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required,max=256"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{Username: r.Username, Password: r.Password}
}

type registerReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r registerReq) toInput() auth.RegisterInput {
	return auth.RegisterInput{Username: r.Username, Password: r.Password}
}

type loginResp struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	LoginAt   time.Time `json:"login_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *handler) newLoginResp(s auth.Session) loginResp {
	return loginResp{
		Token:     s.Token,
		UserID:    s.UserID,
		Username:  s.Username,
		LoginAt:   s.LoginAt,
		ExpiresAt: s.ExpiresAt,
	}
}
