package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/internal/auth"
	remotesync "taskflow/internal/sync"
	"taskflow/internal/task"
	"taskflow/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	srv         *http.Server
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domains
	taskUC          task.UseCase
	authUC          auth.UseCase
	syncUC          remotesync.UseCase
	loginRatePerMin int
	readiness       func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	TaskUseCase task.UseCase
	AuthUseCase auth.UseCase
	// SyncUseCase is optional; without it the /sync routes are not registered.
	SyncUseCase     remotesync.UseCase
	LoginRatePerMin int
	// ReadyCheck gates /ready, e.g. a database ping. Nil means always ready.
	ReadyCheck func(ctx context.Context) error
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		taskUC:          cfg.TaskUseCase,
		authUC:          cfg.AuthUseCase,
		syncUC:          cfg.SyncUseCase,
		loginRatePerMin: cfg.LoginRatePerMin,
		readiness:       cfg.ReadyCheck,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task use case is required")
	}
	if srv.authUC == nil {
		return errors.New("auth use case is required")
	}
	return nil
}
