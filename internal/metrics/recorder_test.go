package metrics

import (
	"testing"
	"time"
)

func TestObserveRank(t *testing.T) {
	labels := map[string]string{"endpoint": "test"}
	before, err := getMetricValue(RankRequests, labels)
	if err != nil {
		t.Fatalf("Failed to read counter: %v", err)
	}
	candidatesBefore, _ := getHistogramCount(RankCandidates)
	durationBefore, _ := getHistogramCount(RankDuration)

	ObserveRank("test", 12, 3*time.Millisecond)

	after, err := getMetricValue(RankRequests, labels)
	if err != nil {
		t.Fatalf("Failed to read counter: %v", err)
	}
	if after != before+1 {
		t.Errorf("Expected counter %v, got %v", before+1, after)
	}
	if got, _ := getHistogramCount(RankCandidates); got != candidatesBefore+1 {
		t.Errorf("Expected one more candidates observation, got %d", got-candidatesBefore)
	}
	if got, _ := getHistogramCount(RankDuration); got != durationBefore+1 {
		t.Errorf("Expected one more duration observation, got %d", got-durationBefore)
	}
}

func TestObservePathLength(t *testing.T) {
	before, _ := getHistogramCount(PathLengthMeters)
	ObservePathLength(111196)
	if got, _ := getHistogramCount(PathLengthMeters); got != before+1 {
		t.Errorf("Expected one more observation, got %d", got-before)
	}
}

func TestObserveGpxImport(t *testing.T) {
	tests := []string{"ok", "no_points", "invalid"}
	for _, result := range tests {
		t.Run(result, func(t *testing.T) {
			labels := map[string]string{"result": result}
			before, _ := getMetricValue(GpxImports, labels)
			ObserveGpxImport(result)
			after, err := getMetricValue(GpxImports, labels)
			if err != nil {
				t.Fatalf("Failed to read counter: %v", err)
			}
			if after != before+1 {
				t.Errorf("Expected %v, got %v", before+1, after)
			}
		})
	}
}

func TestSetCatalogStations(t *testing.T) {
	SetCatalogStations("sbb", 1234)
	SetCatalogStations("sncf", 10)
	SetCatalogStations("sbb", 1300)

	got, err := getMetricValue(CatalogStations, map[string]string{"feed_id": "sbb"})
	if err != nil {
		t.Fatalf("Failed to read gauge: %v", err)
	}
	if got != 1300 {
		t.Errorf("Expected 1300, got %v", got)
	}
	if got, _ := getMetricValue(CatalogStations, map[string]string{"feed_id": "sncf"}); got != 10 {
		t.Errorf("Expected 10, got %v", got)
	}
}

func TestSetStationCacheEntries(t *testing.T) {
	SetStationCacheEntries(7)
	got, err := getMetricValue(StationCacheEntries, nil)
	if err != nil {
		t.Fatalf("Failed to read gauge: %v", err)
	}
	if got != 7 {
		t.Errorf("Expected 7, got %v", got)
	}
}
