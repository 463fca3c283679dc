package models

import (
	"encoding/json"
	"fmt"
)

// GeoPoint is a WGS84 coordinate in degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Path is an ordered polyline. Empty and single-point paths are valid.
type Path []GeoPoint

// UnmarshalJSON accepts both the object form {"lat":..,"lng":..} and the
// [lat, lng] pair emitted by routing engines and map widgets.
func (p *GeoPoint) UnmarshalJSON(b []byte) error {
	var pair []float64
	if err := json.Unmarshal(b, &pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("coordinate pair must have 2 elements, got %d", len(pair))
		}
		p.Lat, p.Lng = pair[0], pair[1]
		return nil
	}

	var obj struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("invalid coordinate: %w", err)
	}
	if obj.Lat == nil || obj.Lng == nil {
		return fmt.Errorf("coordinate object requires lat and lng")
	}
	p.Lat, p.Lng = *obj.Lat, *obj.Lng
	return nil
}

// PathFromPairs converts [lat, lng] pairs into a Path.
func PathFromPairs(pairs [][2]float64) Path {
	path := make(Path, 0, len(pairs))
	for _, pair := range pairs {
		path = append(path, GeoPoint{Lat: pair[0], Lng: pair[1]})
	}
	return path
}
