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

	"github.com/getsentry/sentry-go"

	"tripcore.trainlog.org/internal/app"
	"tripcore.trainlog.org/internal/config"
	"tripcore.trainlog.org/internal/report"
	"tripcore.trainlog.org/internal/utils"
)

const version = "1.0.0"

// metricsInterval is how often catalog and session gauges are refreshed.
const metricsInterval = 30 * time.Second

func main() {
	var (
		port       = flag.Int("port", 0, "API server port (overrides config)")
		env        = flag.String("env", "", "Environment (development|testing|staging|production)")
		configFile = flag.String("config-file", "", "Path to an optional YAML configuration file")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, errs := config.Load(*configFile)
	if cfg == nil {
		for _, err := range errs {
			logger.Error("Failed to load configuration", "error", err)
		}
		os.Exit(1)
	}

	if *port != 0 || *env != "" {
		if *port != 0 {
			cfg.Port = *port
		}
		if *env != "" {
			cfg.Env = *env
		}
		errs = cfg.Validate()
	}
	if len(errs) > 0 {
		for _, err := range errs {
			logger.Error("Invalid configuration", "error", err)
		}
		os.Exit(1)
	}

	if err := report.SetupSentry(report.SentryOptions{
		DSN:         cfg.SentryDSN,
		Environment: cfg.Env,
		Release:     version,
	}); err != nil {
		logger.Error("Failed to initialize Sentry", "error", err)
	}
	defer report.FlushSentry()
	report.ConfigureScope(cfg.Env, version)

	args := make([]any, 0, 18)
	for k, v := range cfg.LogSummary() {
		args = append(args, k, v)
	}
	logger.Info("Loaded configuration", args...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg, logger, version)

	if len(cfg.Feeds) > 0 {
		if err := utils.CreateCacheDirectory(cfg.CatalogDir, logger); err != nil {
			logger.Error("Failed to create catalog directory", "catalog_dir", cfg.CatalogDir, "error", err)
			os.Exit(1)
		}
		// Missing feeds leave the service running but not ready.
		if err := application.CatalogService.LoadFeeds(cfg.Feeds); err != nil {
			logger.Warn("Some station catalogs could not be loaded", "error", err)
		}
		if cfg.CatalogRefresh > 0 {
			go application.CatalogService.RefreshCatalogs(ctx, cfg.Feeds, cfg.CatalogRefresh)
		}
	}

	application.StartMetricsCollection(ctx, metricsInterval)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      application.Routes(ctx),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	if err := serve(ctx, srv, logger); err != nil {
		report.ReportError(err, sentry.LevelFatal)
		report.FlushSentry()
		logger.Error("Server stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

// serve runs srv until ctx is cancelled, then drains open requests.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
