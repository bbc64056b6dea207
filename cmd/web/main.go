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

	"github.com/hammoud/theory-exam/internal/app"
	"github.com/hammoud/theory-exam/internal/config"
	"github.com/hammoud/theory-exam/internal/delivery/rest"
	"github.com/hammoud/theory-exam/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("failed to initialize application", zap.Error(err))
	}
	defer a.Close()

	go a.Sweeper.Start(ctx)

	handler := rest.NewHandler(lg, a.Exam, a.Contact, a.Attempts)
	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      rest.NewRouter(handler, lg, cfg.HTTP.AllowedOrigins, cfg.Questions.ImageDir),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		lg.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("http shutdown failed", zap.Error(err))
		}
	}()

	lg.Info("http server listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		lg.Error("http server failed", zap.Error(err))
	}
}
