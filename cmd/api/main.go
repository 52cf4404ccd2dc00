package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskflow/config"
	_ "taskflow/docs" // Swagger docs
	userFile "taskflow/internal/auth/repository/file"
	authUC "taskflow/internal/auth/usecase"
	"taskflow/internal/httpserver"
	remotesync "taskflow/internal/sync"
	syncUC "taskflow/internal/sync/usecase"
	"taskflow/internal/task/repository/sqlite"
	taskUC "taskflow/internal/task/usecase"
	"taskflow/pkg/datemath"
	"taskflow/pkg/gcalendar"
	"taskflow/pkg/log"
)

const stopTimeout = 15 * time.Second

// @title       taskflow API
// @description Personal task scheduling API: recurring task expansion, agenda, stats, backup and remote sync.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey Bearer
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	defer func() { _ = log.Sync(logger) }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf(ctx, "taskflow: %v", err)
		stop()
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	logger.Info(ctx, "Starting taskflow...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Calendar
	dateMathParser := datemath.NewParserIn(time.Local)
	if cfg.Scheduler.Timezone != "" {
		p, err := datemath.NewParser(cfg.Scheduler.Timezone)
		if err != nil {
			return err
		}
		dateMathParser = p
	}

	// 4. Storage
	taskRepo, err := sqlite.Open(ctx, cfg.Database.Path, logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = taskRepo.Close() }()

	users, err := userFile.Load(ctx, cfg.Auth.UsersFile, logger)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}

	// 5. Google Calendar client (optional)
	var calendar remotesync.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Use cases
	syncer := syncUC.New(logger, taskRepo, calendar, nil, remotesync.Config{
		RemoteURL:  cfg.Sync.RemoteURL,
		Debounce:   cfg.Sync.Debounce,
		Schedule:   cfg.Sync.Schedule,
		Timeout:    cfg.Sync.Timeout,
		CalendarID: cfg.GoogleCalendar.CalendarID,
		Timezone:   dateMathParser.Location().String(),
	})
	if err := syncer.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
		defer cancel()
		syncer.Stop(stopCtx)
	}()

	tasks := taskUC.New(logger, taskRepo, dateMathParser, syncer)
	sessions := authUC.New(logger, users, authUC.Config{
		SessionTTL:      cfg.Auth.SessionTTL,
		SessionCapacity: cfg.Auth.SessionCapacity,
	})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TaskUseCase:     tasks,
		AuthUseCase:     sessions,
		SyncUseCase:     syncer,
		LoginRatePerMin: cfg.Auth.LoginRatePerMin,
		ReadyCheck:      taskRepo.Ping,
	})
	if err != nil {
		return fmt.Errorf("initialize HTTP server: %w", err)
	}

	// 8. Run
	return httpServer.Run(ctx)
}
