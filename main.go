package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-tracker/adapters/db"
	"task-tracker/adapters/notify"
	"task-tracker/adapters/rest/handlers"
	"task-tracker/config"
	"task-tracker/core"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "task tracker configuration file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	log := mustMakeLogger(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("tracker failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	log.Info("starting task tracker")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// storage adapter
	storage, err := db.New(log, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %v", err)
	}
	defer func(storage *db.Storage) {
		if err := storage.Close(); err != nil {
			log.Error("failed to close storage", "error", err)
		}
	}(storage)

	if err := storage.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate storage: %v", err)
	}

	// reminder service adapter
	notifier := notify.New(log, func(p core.ReminderPayload) {
		log.Info("reminder", "task_id", p.TaskID, "body", p.Body)
	})
	defer notifier.Close()

	// store
	store := core.NewStore(log, storage, core.NewScheduler(log, notifier))
	if err := store.Load(ctx); err != nil {
		if !errors.Is(err, core.ErrCorruptState) {
			return fmt.Errorf("failed to load state: %v", err)
		}
		log.Warn("persisted state was corrupt, continuing with defaults", "error", err)
	}
	// in-process timers do not survive restarts, rebuild them
	store.ResyncReminders(ctx)

	mux := http.NewServeMux()
	handlers.Register(mux, log, store, cfg.HTTP.Timeout)

	server := http.Server{
		Addr:              cfg.HTTP.Address,
		ReadHeaderTimeout: cfg.HTTP.Timeout,
		Handler:           mux,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("task tracker http server", "address", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped unexpectedly: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func mustMakeLogger(levelStr string) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
