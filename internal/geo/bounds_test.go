package geo

import (
	"errors"
	"testing"

	"tripcore.trainlog.org/internal/models"
)

func TestBounds(t *testing.T) {
	t.Run("Valid path", func(t *testing.T) {
		path := models.PathFromPairs([][2]float64{{47.37, 8.54}, {46.2, 6.14}, {46.95, 7.44}})
		box, err := Bounds(path)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		want := BoundingBox{MinLat: 46.2, MaxLat: 47.37, MinLng: 6.14, MaxLng: 8.54}
		if box != want {
			t.Errorf("Expected %+v, got %+v", want, box)
		}
		if !box.Contains(models.GeoPoint{Lat: 46.5, Lng: 7}) {
			t.Error("Expected box to contain an inner point")
		}
		if box.Contains(models.GeoPoint{Lat: 45, Lng: 7}) {
			t.Error("Expected box not to contain an outer point")
		}
	})

	t.Run("Invalid points are skipped", func(t *testing.T) {
		path := models.PathFromPairs([][2]float64{{0, 0}, {10, 20}, {95, 20}})
		box, err := Bounds(path)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if box.MinLat != 10 || box.MaxLat != 10 || box.MinLng != 20 || box.MaxLng != 20 {
			t.Errorf("Expected a box around (10, 20), got %+v", box)
		}
	})

	t.Run("Empty path", func(t *testing.T) {
		if _, err := Bounds(nil); !errors.Is(err, ErrEmptyPath) {
			t.Errorf("Expected ErrEmptyPath, got %v", err)
		}
	})
}

func TestBoundingBoxCenter(t *testing.T) {
	box := BoundingBox{MinLat: 10, MaxLat: 20, MinLng: -10, MaxLng: 30}
	if got := box.Center(); got != (models.GeoPoint{Lat: 15, Lng: 10}) {
		t.Errorf("Unexpected center: %v", got)
	}
}

func TestIsValidLatLon(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{"Valid", 47.6, -122.3, true},
		{"Null island", 0, 0, false},
		{"Latitude too high", 91, 0, false},
		{"Longitude too low", 10, -181, false},
		{"Edges", -90, 180, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidLatLon(tt.lat, tt.lon); got != tt.want {
				t.Errorf("IsValidLatLon(%v, %v) = %v, want %v", tt.lat, tt.lon, got, tt.want)
			}
		})
	}
}
