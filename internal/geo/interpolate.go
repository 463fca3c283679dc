package geo

import (
	"math"

	"github.com/golang/geo/s2"

	"tripcore.trainlog.org/internal/models"
)

// DefaultMaxGapKm is the largest gap InterpolateGaps leaves between two
// points when no limit is configured.
const DefaultMaxGapKm = 50

// MinGapKm is the smallest gap callers may ask InterpolateGaps for.
const MinGapKm = 0.1

// MaxSegmentPoints caps the points inserted into a single segment.
const MaxSegmentPoints = 1000

// InterpolateGaps returns a copy of path where every segment longer than
// maxKm is subdivided along the great circle. A segment of d km receives
// floor(d/maxKm) evenly spaced intermediate points, capped at
// MaxSegmentPoints. Paths with fewer than two points, or a non-positive
// maxKm, are returned unchanged.
func InterpolateGaps(path models.Path, maxKm float64) models.Path {
	if len(path) < 2 || maxKm <= 0 {
		return path
	}

	out := make(models.Path, 0, len(path))
	out = append(out, path[0])
	for i := 1; i < len(path); i++ {
		prev, curr := path[i-1], path[i]
		if n := segmentSteps(prev, curr, maxKm); n > 0 {
			out = append(out, greatCirclePoints(prev, curr, n)...)
		}
		out = append(out, curr)
	}
	return out
}

// InterpolatedLen returns len(InterpolateGaps(path, maxKm)) without
// building the path.
func InterpolatedLen(path models.Path, maxKm float64) int {
	if len(path) < 2 || maxKm <= 0 {
		return len(path)
	}
	n := len(path)
	for i := 1; i < len(path); i++ {
		n += segmentSteps(path[i-1], path[i], maxKm)
	}
	return n
}

// segmentSteps is the number of points inserted between a and b:
// floor(km/maxKm) for segments longer than maxKm, at most MaxSegmentPoints.
func segmentSteps(a, b models.GeoPoint, maxKm float64) int {
	km := Distance(a, b) / 1000
	if !(km > maxKm) {
		return 0
	}
	steps := math.Floor(km / maxKm)
	if math.IsNaN(steps) || steps > MaxSegmentPoints {
		return MaxSegmentPoints
	}
	return int(steps)
}

// greatCirclePoints returns n points strictly between a and b, spaced at
// fractions i/(n+1) of the arc.
func greatCirclePoints(a, b models.GeoPoint, n int) []models.GeoPoint {
	pa := s2.PointFromLatLng(s2.LatLngFromDegrees(a.Lat, a.Lng))
	pb := s2.PointFromLatLng(s2.LatLngFromDegrees(b.Lat, b.Lng))
	if n < 1 || pa.ApproxEqual(pb) {
		return nil
	}

	points := make([]models.GeoPoint, 0, n)
	for i := 1; i <= n; i++ {
		ll := s2.LatLngFromPoint(s2.Interpolate(float64(i)/float64(n+1), pa, pb))
		points = append(points, models.GeoPoint{Lat: ll.Lat.Degrees(), Lng: ll.Lng.Degrees()})
	}
	return points
}
