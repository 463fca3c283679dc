package geo

import (
	"math"
	"testing"

	"tripcore.trainlog.org/internal/models"
)

const tolerance = 1e-6

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b models.GeoPoint
		want float64
	}{
		{
			name: "One degree along the equator",
			a:    models.GeoPoint{Lat: 0, Lng: 0},
			b:    models.GeoPoint{Lat: 0, Lng: 1},
			want: EarthRadiusMeters * math.Pi / 180,
		},
		{
			name: "One degree along a meridian",
			a:    models.GeoPoint{Lat: 10, Lng: 5},
			b:    models.GeoPoint{Lat: 11, Lng: 5},
			want: EarthRadiusMeters * math.Pi / 180,
		},
		{
			name: "Same point",
			a:    models.GeoPoint{Lat: 46.5, Lng: 6.6},
			b:    models.GeoPoint{Lat: 46.5, Lng: 6.6},
			want: 0,
		},
		{
			name: "Antipodes",
			a:    models.GeoPoint{Lat: 0, Lng: 0},
			b:    models.GeoPoint{Lat: 0, Lng: 180},
			want: EarthRadiusMeters * math.Pi,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.want) > tolerance {
				t.Errorf("Expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestDistanceKnownValue(t *testing.T) {
	got := Distance(models.GeoPoint{Lat: 0, Lng: 0}, models.GeoPoint{Lat: 0, Lng: 1})
	if math.Abs(got-111196.17) > 0.01 {
		t.Errorf("Expected about 111196.17 m, got %f", got)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	paris := models.GeoPoint{Lat: 48.8566, Lng: 2.3522}
	berlin := models.GeoPoint{Lat: 52.52, Lng: 13.405}
	if d1, d2 := Distance(paris, berlin), Distance(berlin, paris); math.Abs(d1-d2) > tolerance {
		t.Errorf("Expected symmetric distance, got %f and %f", d1, d2)
	}
}

func TestPathLength(t *testing.T) {
	a := models.GeoPoint{Lat: 47.3769, Lng: 8.5417}
	b := models.GeoPoint{Lat: 47.5596, Lng: 7.5886}
	c := models.GeoPoint{Lat: 46.948, Lng: 7.4474}

	t.Run("Empty path", func(t *testing.T) {
		if got := PathLength(nil); got != 0 {
			t.Errorf("Expected 0, got %f", got)
		}
	})

	t.Run("Single point", func(t *testing.T) {
		if got := PathLength(models.Path{a}); got != 0 {
			t.Errorf("Expected 0, got %f", got)
		}
	})

	t.Run("Additivity", func(t *testing.T) {
		whole := PathLength(models.Path{a, b, c})
		parts := PathLength(models.Path{a, b}) + PathLength(models.Path{b, c})
		if math.Abs(whole-parts) > tolerance {
			t.Errorf("Expected %f, got %f", parts, whole)
		}
	})

	t.Run("Reversal", func(t *testing.T) {
		forward := PathLength(models.Path{a, b, c})
		backward := PathLength(models.Path{c, b, a})
		if math.Abs(forward-backward) > tolerance {
			t.Errorf("Expected reversed path to have the same length, got %f and %f", forward, backward)
		}
	})
}

func TestSegmentDistances(t *testing.T) {
	path := models.PathFromPairs([][2]float64{{0, 0}, {0, 1}, {0, 3}})
	got := SegmentDistances(path)
	if len(got) != 2 {
		t.Fatalf("Expected 2 segments, got %d", len(got))
	}
	oneDegree := EarthRadiusMeters * math.Pi / 180
	if math.Abs(got[0]-oneDegree) > tolerance || math.Abs(got[1]-2*oneDegree) > tolerance {
		t.Errorf("Unexpected segments: %v", got)
	}

	if got := SegmentDistances(models.Path{{Lat: 1, Lng: 1}}); len(got) != 0 {
		t.Errorf("Expected no segments for a single point, got %v", got)
	}
}

func TestCumulativeDistances(t *testing.T) {
	path := models.PathFromPairs([][2]float64{{0, 0}, {0, 1}, {0, 2}})
	got := CumulativeDistances(path)
	// 111196.17 is truncated per segment before summing.
	want := []int{0, 111196, 222392}
	if len(got) != len(want) {
		t.Fatalf("Expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, got)
			break
		}
	}

	if got := CumulativeDistances(nil); len(got) != 0 {
		t.Errorf("Expected empty result for empty path, got %v", got)
	}
}

func TestMetersToKm(t *testing.T) {
	tests := []struct {
		meters float64
		want   float64
	}{
		{meters: 123456, want: 123},
		{meters: 1500, want: 2},
		{meters: 1000, want: 1},
		{meters: 456, want: 0.46},
		{meters: 0, want: 0},
	}
	for _, tt := range tests {
		if got := MetersToKm(tt.meters); got != tt.want {
			t.Errorf("MetersToKm(%v) = %v, want %v", tt.meters, got, tt.want)
		}
	}
}
