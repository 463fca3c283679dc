package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RankRequests counts ranking calls per endpoint ("rank", "stations", "match").
	RankRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripcore_rank_requests_total",
			Help: "Number of autocomplete ranking requests",
		},
		[]string{"endpoint"},
	)

	RankCandidates = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tripcore_rank_candidates",
		Help:    "Number of candidates scored per ranking request",
		Buckets: []float64{0, 5, 10, 20, 50, 100, 250, 500, 1000},
	})

	RankDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tripcore_rank_duration_seconds",
		Help:    "Time spent scoring and sorting candidates",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	})
)

var (
	PathLengthMeters = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tripcore_path_length_meters",
		Help:    "Great-circle length of summarized paths",
		Buckets: prometheus.ExponentialBuckets(100, 4, 10),
	})

	// GpxImports counts GPX uploads by result ("ok", "no_points", "invalid").
	GpxImports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripcore_gpx_imports_total",
		Help: "Number of GPX imports by result",
	}, []string{"result"})
)

var (
	CatalogStations = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tripcore_catalog_stations",
		Help: "Number of named stations loaded from a GTFS feed",
	}, []string{"feed_id"})

	StationCacheEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tripcore_station_cache_entries",
		Help: "Number of station references held by open search sessions",
	})
)
