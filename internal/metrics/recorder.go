package metrics

import "time"

// ObserveRank records one ranking call.
func ObserveRank(endpoint string, candidates int, elapsed time.Duration) {
	RankRequests.WithLabelValues(endpoint).Inc()
	RankCandidates.Observe(float64(candidates))
	RankDuration.Observe(elapsed.Seconds())
}

// ObservePathLength records the length of a summarized path in meters.
func ObservePathLength(meters float64) {
	PathLengthMeters.Observe(meters)
}

// ObserveGpxImport records the outcome of a GPX import.
func ObserveGpxImport(result string) {
	GpxImports.WithLabelValues(result).Inc()
}

// SetCatalogStations reports the size of a loaded feed catalog.
func SetCatalogStations(feedID string, count int) {
	CatalogStations.WithLabelValues(feedID).Set(float64(count))
}

// SetStationCacheEntries reports the number of cached session stations.
func SetStationCacheEntries(count int) {
	StationCacheEntries.Set(float64(count))
}
