package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"taskflow/internal/middleware"
	"taskflow/internal/model"
	"taskflow/pkg/log"
)

type fakeAuth struct{}

func (fakeAuth) Authenticate(ctx context.Context, token string) (model.Scope, error) {
	if token == "good" {
		return model.Scope{UserID: "u-1", Username: "alex"}, nil
	}
	return model.Scope{}, errors.New("unauthorized")
}

func newRouter(mw middleware.Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", mw.Auth(), func(c *gin.Context) {
		sc, ok := middleware.GetScope(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, sc.UserID)
	})
	r.POST("/login", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestAuth(t *testing.T) {
	r := newRouter(middleware.New(log.NewNop(), fakeAuth{}, 60))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "valid token", header: "Bearer good", want: http.StatusOK},
		{name: "bad token", header: "Bearer bad", want: http.StatusUnauthorized},
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good", want: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, "u-1", w.Body.String())
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	// 30/min gives a burst of 3.
	r := newRouter(middleware.New(log.NewNop(), fakeAuth{}, 30))

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{200, 200, 200, 429, 429}, codes)

	// Other clients have their own bucket.
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_ConcurrentFirstRequests(t *testing.T) {
	// 1/min gives a burst of 1, so only one request may pass.
	r := newRouter(middleware.New(log.NewNop(), fakeAuth{}, 1))

	const n = 20
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		codes = map[int]int{}
	)
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req.RemoteAddr = "10.0.0.9:1234"
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			mu.Lock()
			codes[w.Code]++
			mu.Unlock()
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, map[int]int{http.StatusOK: 1, http.StatusTooManyRequests: n - 1}, codes)
}
