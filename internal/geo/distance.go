// Package geo measures polylines on a spherical Earth.
//
// Distances use the haversine formula with a fixed radius so that results
// match the path lengths stored with existing trips to the bit.
package geo

import (
	"math"

	"tripcore.trainlog.org/internal/models"
)

// EarthRadiusMeters is the sphere radius used for every distance in this
// package. Stored trip lengths were computed with this value, not the more
// common 6,371,000.
const EarthRadiusMeters = 6371071

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance returns the great-circle distance in meters between a and b.
func Distance(a, b models.GeoPoint) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := lat2 - lat1
	dLng := toRadians(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

// PathLength sums the distances between consecutive points, in input order.
// Paths with fewer than two points have length 0.
func PathLength(path models.Path) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += Distance(path[i-1], path[i])
	}
	return total
}

// SegmentDistances returns the distance of every consecutive pair, so
// len(result) == len(path)-1 for non-empty paths.
func SegmentDistances(path models.Path) []float64 {
	if len(path) < 2 {
		return []float64{}
	}
	out := make([]float64, len(path)-1)
	for i := 1; i < len(path); i++ {
		out[i-1] = Distance(path[i-1], path[i])
	}
	return out
}

// CumulativeDistances returns, for each point, the distance travelled from
// the first point. Each segment is truncated to whole meters before being
// added, which is how per-node distances are persisted alongside a path.
func CumulativeDistances(path models.Path) []int {
	out := make([]int, len(path))
	for i := 1; i < len(path); i++ {
		out[i] = out[i-1] + int(Distance(path[i-1], path[i]))
	}
	return out
}

// MetersToKm converts meters to kilometers for display: whole kilometers
// above 1 km, two decimals below.
func MetersToKm(m float64) float64 {
	km := m / 1000
	if km > 1 {
		return math.Round(km)
	}
	return math.Round(km*100) / 100
}
