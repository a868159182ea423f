package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jfaulds/pacereader/internal/ai"
	"github.com/jfaulds/pacereader/internal/api"
	"github.com/jfaulds/pacereader/internal/config"
	"github.com/jfaulds/pacereader/internal/segment"
	"github.com/jfaulds/pacereader/internal/session"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gemini := ai.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	seg := segment.New(log)

	store := session.NewStore(cfg.SessionTTL)
	store.StartCleanup(ctx, cfg.CleanupInterval)

	srv := api.NewServer(store, seg, gemini, gemini, session.RealClock{}, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		gemini.Close()
	}()

	log.Info("starting pacereader", "port", cfg.Port, "model", gemini.Model())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
