package geo

import (
	"errors"
	"math"

	"tripcore.trainlog.org/internal/models"
)

// ErrEmptyPath is returned when a bounding box is requested for a path
// without any valid coordinate.
var ErrEmptyPath = errors.New("no valid latitude/longitude in path")

// BoundingBox defines the corners of a lat/lng box
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// Contains checks whether the point lies within the bounding box
func (b BoundingBox) Contains(p models.GeoPoint) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat && p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}

// Center returns the midpoint of the box, used to center a map view.
func (b BoundingBox) Center() models.GeoPoint {
	return models.GeoPoint{Lat: (b.MinLat + b.MaxLat) / 2, Lng: (b.MinLng + b.MaxLng) / 2}
}

// Bounds computes the bounding box of the valid points of path.
func Bounds(path models.Path) (BoundingBox, error) {
	box := BoundingBox{
		MinLat: math.MaxFloat64,
		MaxLat: -math.MaxFloat64,
		MinLng: math.MaxFloat64,
		MaxLng: -math.MaxFloat64,
	}

	found := false
	for _, p := range path {
		if !IsValidLatLon(p.Lat, p.Lng) {
			continue
		}
		found = true
		box.MinLat = min(box.MinLat, p.Lat)
		box.MaxLat = max(box.MaxLat, p.Lat)
		box.MinLng = min(box.MinLng, p.Lng)
		box.MaxLng = max(box.MaxLng, p.Lng)
	}

	if !found {
		return BoundingBox{}, ErrEmptyPath
	}
	return box, nil
}

// IsValidLatLon returns true if the given latitude and longitude values
// fall within the valid geographic coordinate bounds.
//
// Note: (0,0) is treated as invalid. Paths coming out of routers and GPX
// files use it for uninitialized points far more often than for the Gulf
// of Guinea.
func IsValidLatLon(lat, lon float64) bool {
	if lat == 0 && lon == 0 {
		return false
	}
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
