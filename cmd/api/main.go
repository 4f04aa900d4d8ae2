package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/emilythestrangee/breadit-api/internal/config"
	"github.com/emilythestrangee/breadit-api/internal/logger"
	"github.com/emilythestrangee/breadit-api/internal/server"
)

func gracefulShutdown(apiServer *http.Server, log *zap.Logger, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info("shutting down gracefully, press Ctrl+C again to force")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	done <- true
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.App)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	srv, err := server.NewServer(cfg, zl)
	if err != nil {
		zl.Fatal("failed to initialize server", zap.Error(err))
	}
	defer srv.Close() //nolint:errcheck

	apiServer := srv.HTTPServer()

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, zl, done)

	zl.Info("server starting", zap.String("addr", apiServer.Addr), zap.String("environment", cfg.App.Environment))
	if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zl.Fatal("http server error", zap.Error(err))
	}

	<-done
	zl.Info("graceful shutdown complete")
}
