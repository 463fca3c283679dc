package app

import (
	"context"
	"time"

	"tripcore.trainlog.org/internal/metrics"
)

// StartMetricsCollection refreshes the catalog and session gauges every
// interval until ctx is done.
func (app *Application) StartMetricsCollection(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				app.CollectMetrics()
			}
		}
	}()
}

// CollectMetrics sets the gauges from the current catalogs and sessions.
func (app *Application) CollectMetrics() {
	store := app.CatalogService.Store
	for _, feedID := range store.FeedIDs() {
		if catalog, ok := store.Get(feedID); ok {
			metrics.SetCatalogStations(feedID, catalog.Len())
		}
	}
	metrics.SetStationCacheEntries(app.SearchService.Sessions.Entries())
}
