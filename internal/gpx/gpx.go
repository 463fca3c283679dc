// Package gpx imports GPX files into trip paths.
package gpx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"tripcore.trainlog.org/internal/geo"
	"tripcore.trainlog.org/internal/models"
)

// ErrNoPoints is returned when a document has neither track nor route points.
var ErrNoPoints = errors.New("gpx: no trkpt or rtept elements")

// ErrInvalidPoint is returned for points outside valid coordinate bounds,
// not finite, or at (0,0).
var ErrInvalidPoint = errors.New("gpx: invalid coordinates")

// Point element names, in order of preference.
const (
	TrackPoint = "trkpt"
	RoutePoint = "rtept"
)

// Track is an imported GPX path.
type Track struct {
	Path models.Path
	// Length in meters.
	Length float64
	// Duration in seconds, summed over consecutive points that both carry a
	// timestamp.
	Duration float64
	// Source is TrackPoint or RoutePoint.
	Source string
}

type point struct {
	Lat  string `xml:"lat,attr"`
	Lon  string `xml:"lon,attr"`
	Time string `xml:"time"`
}

// Parse reads a GPX document. Track points are used when present, route
// points otherwise; waypoints are ignored.
func Parse(r io.Reader) (*Track, error) {
	dec := xml.NewDecoder(r)
	found := map[string][]point{}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("gpx: reading document: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || (start.Name.Local != TrackPoint && start.Name.Local != RoutePoint) {
			continue
		}
		var p point
		if err := dec.DecodeElement(&p, &start); err != nil {
			return nil, fmt.Errorf("gpx: decoding %s: %w", start.Name.Local, err)
		}
		found[start.Name.Local] = append(found[start.Name.Local], p)
	}

	source := TrackPoint
	points := found[TrackPoint]
	if len(points) == 0 {
		source = RoutePoint
		points = found[RoutePoint]
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	return buildTrack(source, points)
}

func buildTrack(source string, points []point) (*Track, error) {
	track := &Track{Path: make(models.Path, 0, len(points)), Source: source}

	var prevTime time.Time
	for i, p := range points {
		lat, err := strconv.ParseFloat(strings.TrimSpace(p.Lat), 64)
		if err != nil {
			return nil, fmt.Errorf("gpx: %s %d: invalid lat %q", source, i, p.Lat)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(p.Lon), 64)
		if err != nil {
			return nil, fmt.Errorf("gpx: %s %d: invalid lon %q", source, i, p.Lon)
		}
		if math.IsInf(lat, 0) || math.IsInf(lon, 0) || !geo.IsValidLatLon(lat, lon) {
			return nil, fmt.Errorf("%w: %s %d (%s, %s)", ErrInvalidPoint, source, i, p.Lat, p.Lon)
		}
		track.Path = append(track.Path, models.GeoPoint{Lat: lat, Lng: lon})

		// A point without a usable time breaks the chain: the next timed
		// point does not count the gap.
		ts, err := time.Parse(time.RFC3339, strings.TrimSpace(p.Time))
		if err != nil {
			prevTime = time.Time{}
			continue
		}
		if !prevTime.IsZero() {
			track.Duration += ts.Sub(prevTime).Seconds()
		}
		prevTime = ts
	}

	track.Length = geo.PathLength(track.Path)
	return track, nil
}
