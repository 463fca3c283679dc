package report

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryOptions configures the Sentry client. An empty DSN disables
// delivery; reporting calls become no-ops.
type SentryOptions struct {
	DSN         string
	Environment string
	Release     string
	Debug       bool
}

// SetupSentry initializes the global Sentry client.
func SetupSentry(opts SentryOptions) error {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              opts.DSN,
		Environment:      opts.Environment,
		Release:          opts.Release,
		EnableTracing:    true,
		Debug:            opts.Debug,
		TracesSampleRate: 1.0,
	}); err != nil {
		return fmt.Errorf("sentry.Init: %w", err)
	}
	sentry.CaptureMessage("tripcore started")
	return nil
}

func FlushSentry() {
	sentry.Flush(2 * time.Second)
}
