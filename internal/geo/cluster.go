package geo

import (
	"fmt"

	"github.com/golang/geo/s2"
	"github.com/jamespfennell/gtfs"
)

const s2Level = 10 // S2 cell level with 7–10 km spatial resolution

// GTFS location_type values.
const (
	locationStop         = 0
	locationStation      = 1
	locationEntrance     = 2
	locationGenericNode  = 3
	locationBoardingArea = 4
)

// Cluster types returned by ClusterID.
const (
	ClusterStation = "station"
	ClusterS2      = "s2"
)

// S2CellID returns a stable S2 cell label for a coordinate.
func S2CellID(lat, lon float64) string {
	ll := s2.LatLngFromDegrees(lat, lon)
	cellID := s2.CellIDFromLatLng(ll).Parent(s2Level)
	return fmt.Sprintf("s2_%d", uint64(cellID))
}

// ClusterID groups a GTFS stop with the other stops of the same station, so
// that platforms and entrances collapse into one autocomplete entry.
// Stops outside a station hierarchy fall back to their S2 cell.
//
// See the parent_station section of https://gtfs.org/schedule/reference/#stopstxt
func ClusterID(stop gtfs.Stop) (clusterID string, clusterType string, ok bool) {
	switch stop.Type {
	case locationStop:
		if stop.Parent != nil {
			root := stop.Root()
			if root.Type == locationStation {
				return root.Id, ClusterStation, true
			}
			return "", "", false // malformed hierarchy
		}
		if stop.Latitude != nil && stop.Longitude != nil {
			return S2CellID(*stop.Latitude, *stop.Longitude), ClusterS2, true
		}
	case locationStation:
		return stop.Id, ClusterStation, true
	case locationEntrance, locationGenericNode:
		if stop.Parent != nil && stop.Parent.Type == locationStation {
			return stop.Parent.Id, ClusterStation, true
		}
	case locationBoardingArea:
		if stop.Parent == nil || stop.Parent.Type != locationStop {
			return "", "", false
		}
		grandparent := stop.Parent.Parent
		if grandparent == nil {
			if stop.Latitude != nil && stop.Longitude != nil {
				return S2CellID(*stop.Latitude, *stop.Longitude), ClusterS2, true
			}
			return "", "", false
		}
		if grandparent.Type == locationStation {
			return grandparent.Id, ClusterStation, true
		}
	}
	return "", "", false
}
