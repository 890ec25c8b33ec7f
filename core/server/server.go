package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planit-api/core/cache"
	"planit-api/core/config"
	"planit-api/core/constants"
	"planit-api/core/database"
	"planit-api/core/logger"
	"planit-api/core/middleware"
	"planit-api/core/tasks"
	"planit-api/modules/event"
	"planit-api/modules/export"
	"planit-api/modules/guest"
	"planit-api/modules/seating"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run boots the API server and its background workers, blocking until a
// shutdown signal arrives.
func Run() error {
	cfg := config.Get()

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("database init: %w", err)
	}

	rdb, err := cache.InitRedis(cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis init: %w", err)
	}

	taskClient := tasks.InitClient(cfg.Redis)
	defer taskClient.Close()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())

	mw := middleware.NewMiddleware(cfg)

	mux := asynq.NewServeMux()
	event.Init(e, db, mw)
	guestSvc := guest.Init(e, db, mw)
	seating.Init(e, db, rdb, mw, guestSvc, mux)
	export.Init(e, db, mw, guestSvc)

	worker := tasks.NewServer(cfg.Redis)
	go func() {
		if err := worker.Run(mux); err != nil {
			logger.Error("Server:Run worker stopped", "error", err)
		}
	}()

	scheduler := tasks.NewScheduler(cfg.Redis)
	pollInterval := fmt.Sprintf("@every %ds", cfg.Seating.SyncPollSeconds)
	if _, err := scheduler.Register(pollInterval, asynq.NewTask(tasks.TypeSeatingSyncPoll, nil,
		asynq.Queue(constants.QueueSeating))); err != nil {
		return fmt.Errorf("scheduler register: %w", err)
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("Server:Run scheduler stopped", "error", err)
		}
	}()

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		logger.Info("Starting server", "addr", addr, "env", cfg.Server.Env)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Run http stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	scheduler.Shutdown()
	worker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
