package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/existflow/mynotes/internal/config"
	"github.com/existflow/mynotes/internal/db"
	"github.com/existflow/mynotes/internal/logger"
	"github.com/existflow/mynotes/internal/repository"
	"github.com/existflow/mynotes/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mynotes-server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	addr := cfg.ServerAddr
	if port := os.Getenv("PORT"); port != "" {
		addr = net.JoinHostPort("127.0.0.1", port)
	}

	logConfig := logger.DefaultConfig()
	logConfig.Level = logger.ParseLevel(cfg.LogLevel)
	logConfig.FilePath = cfg.LogFile
	logConfig.Console = true
	if err := logger.Init(logConfig); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warn("Error closing database", logger.Err(err))
		}
	}()

	repo := repository.New(ctx, database, logger.L())
	if err := repo.Wait(ctx); err != nil {
		return fmt.Errorf("failed to prepare database: %w", err)
	}

	srv := server.New(repo, logger.L())
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(addr)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}
