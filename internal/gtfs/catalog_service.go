// Package gtfs builds station catalogs for autocomplete out of GTFS static
// bundles cached on disk.
package gtfs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"

	"tripcore.trainlog.org/internal/metrics"
	"tripcore.trainlog.org/internal/report"
	"tripcore.trainlog.org/internal/utils"
)

// ErrUnknownFeed is returned for feeds that have no loaded catalog.
var ErrUnknownFeed = errors.New("unknown feed")

type CatalogService struct {
	Store    *CatalogStore
	CacheDir string
	Logger   *slog.Logger
}

func NewCatalogService(store *CatalogStore, cacheDir string, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		Store:    store,
		CacheDir: cacheDir,
		Logger:   logger,
	}
}

// Catalog returns the loaded catalog of feedID or ErrUnknownFeed.
func (cs *CatalogService) Catalog(feedID string) (*StationCatalog, error) {
	catalog, ok := cs.Store.Get(feedID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFeed, feedID)
	}
	return catalog, nil
}

// LoadFeed parses the newest cached bundle of feedID and stores its catalog.
func (cs *CatalogService) LoadFeed(feedID string) error {
	return loadFeed(cs.CacheDir, feedID, cs.Store, cs.Logger)
}

// LoadFeeds loads every feed concurrently. Failures are logged and reported
// per feed; the returned error joins them.
func (cs *CatalogService) LoadFeeds(feedIDs []string) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, feedID := range feedIDs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := cs.LoadFeed(feedID); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return errors.Join(errs...)
}

// RefreshCatalogs reloads the feeds at every interval until ctx is done, so
// that bundles dropped into the cache directory are picked up without a
// restart.
func (cs *CatalogService) RefreshCatalogs(ctx context.Context, feedIDs []string, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			cs.Logger.Info("Stopping catalog refresh routine")
			return
		case <-ticker.C:
			cs.Logger.Info("Refreshing station catalogs")
			_ = cs.LoadFeeds(feedIDs)
		}
	}
}

func loadFeed(cacheDir, feedID string, store *CatalogStore, logger *slog.Logger) error {
	path, err := utils.GetLastCachedFile(cacheDir, feedID)
	if err != nil {
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:         utils.MakeMap("feed_id", feedID),
			ExtraContext: map[string]interface{}{"cache_dir": cacheDir},
			Level:        sentry.LevelWarning,
		})
		logger.Error("No cached GTFS bundle", "feed_id", feedID, "error", err)
		return err
	}

	// #nosec G304 -- path comes from the configured cache directory listing.
	data, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("failed to read GTFS bundle %s: %w", path, err)
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  utils.MakeMap("feed_id", feedID),
			Level: sentry.LevelError,
		})
		logger.Error("Failed to read GTFS bundle", "feed_id", feedID, "error", err)
		return err
	}

	catalog, err := ParseCatalog(feedID, data)
	if err != nil {
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:         utils.MakeMap("feed_id", feedID),
			ExtraContext: map[string]interface{}{"cache_file": path},
			Level:        sentry.LevelError,
		})
		logger.Error("Failed to parse GTFS bundle", "feed_id", feedID, "error", err)
		return err
	}

	store.Set(feedID, catalog)
	metrics.SetCatalogStations(feedID, catalog.Len())
	logger.Info("Loaded station catalog", "feed_id", feedID, "stations", catalog.Len(), "path", path)
	return nil
}
