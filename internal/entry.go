// Package internal provides the application initialization and the watch
// runtime.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/barcart/barcart/internal/library"
	"github.com/barcart/barcart/internal/report"
	"github.com/barcart/barcart/internal/storage"
	"github.com/barcart/barcart/internal/watch"
)

var errShutdown = errors.New("shutdown requested")

// RunWatch validates the whole library once, then watches it and
// revalidates files as they change, until ctx is cancelled or a shutdown
// signal arrives. Reports go to stdout; logs go to stderr as JSON.
func RunWatch(ctx context.Context, opts ...Option) error {
	app := &application{out: os.Stdout}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("configuration loaded",
		slog.String("library_path", cfg.Library.Path),
		slog.Int("workers", cfg.Validation.Workers),
		slog.String("log_level", cfg.App.LogLevel.String()))

	store, err := storage.NewFS(cfg.Library.Path)
	if err != nil {
		return fmt.Errorf("init library: %w", err)
	}
	svc := library.NewService(store)

	writer := report.NewWriter(app.out)

	// Initial pass over the whole library.
	results, err := svc.ValidateAll(ctx, cfg.Validation.Workers)
	if err != nil {
		return fmt.Errorf("initial validation: %w", err)
	}
	for _, fr := range results {
		writer.File(fr)
	}
	writer.Summary(results)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return watch.Watch(gCtx, store, cfg.Library.Path, logger, func(kind string, fr library.FileResult) {
			if kind == "removed" {
				return
			}
			writer.File(fr)
		})
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("received shutdown signal", slog.String("signal", sig.String()))
			return errShutdown
		case <-gCtx.Done():
			return nil
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errShutdown) {
		logger.Error("watch error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("watch stopped")
	return nil
}
