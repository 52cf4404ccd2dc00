package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/auth"
	authHTTP "taskflow/internal/auth/delivery/http"
	"taskflow/internal/middleware"
	"taskflow/internal/model"
	"taskflow/pkg/log"
)

type fakeUC struct {
	loggedOut []string
}

func (f *fakeUC) Login(ctx context.Context, in auth.LoginInput) (auth.Session, error) {
	if in.Username == "alex" && in.Password == "pw" {
		now := time.Now()
		return auth.Session{Token: "tok", UserID: "u-1", Username: "alex", LoginAt: now, ExpiresAt: now.Add(time.Hour)}, nil
	}
	return auth.Session{}, auth.ErrInvalidCredentials
}

func (f *fakeUC) Logout(ctx context.Context, token string) error {
	f.loggedOut = append(f.loggedOut, token)
	return nil
}

func (f *fakeUC) Authenticate(ctx context.Context, token string) (model.Scope, error) {
	if token == "tok" {
		return model.Scope{UserID: "u-1", Username: "alex"}, nil
	}
	return model.Scope{}, auth.ErrUnauthorized
}

func (f *fakeUC) Register(ctx context.Context, in auth.RegisterInput) error {
	return auth.ErrRegistrationDisabled
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func setup() (*gin.Engine, *fakeUC) {
	gin.SetMode(gin.TestMode)
	uc := &fakeUC{}
	r := gin.New()
	mw := middleware.New(log.NewNop(), uc, 600)
	authHTTP.RegisterRoutes(r.Group("/api/v1"), authHTTP.New(log.NewNop(), uc), mw)
	return r, uc
}

func do(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	r, _ := setup()

	w := do(r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "alex", "password": "pw"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var data struct {
		Token  string `json:"token"`
		UserID string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "tok", data.Token)
	assert.Equal(t, "u-1", data.UserID)

	w = do(r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "alex", "password": "bad"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "alex"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogout(t *testing.T) {
	r, uc := setup()

	w := do(r, http.MethodPost, "/api/v1/auth/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/v1/auth/logout", "tok", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"tok"}, uc.loggedOut)
}

func TestRegister(t *testing.T) {
	r, _ := setup()

	w := do(r, http.MethodPost, "/api/v1/auth/register", "", map[string]string{"username": "x", "password": "y"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "registration is disabled", resp.Message)
}
