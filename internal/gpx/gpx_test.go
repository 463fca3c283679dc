package gpx

import (
	"errors"
	"math"
	"strings"
	"testing"

	"tripcore.trainlog.org/internal/geo"
)

const trackGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <wpt lat="10" lon="10"><name>ignored</name></wpt>
  <rte><rtept lat="1" lon="1"/></rte>
  <trk>
    <name>Zurich - Basel</name>
    <trkseg>
      <trkpt lat="0" lon="10"><time>2024-05-01T10:00:00Z</time></trkpt>
      <trkpt lat="0" lon="11"><time>2024-05-01T10:30:00Z</time></trkpt>
    </trkseg>
    <trkseg>
      <trkpt lat="0" lon="12"><ele>300</ele><time>2024-05-01T11:00:00.500Z</time></trkpt>
    </trkseg>
  </trk>
</gpx>`

const routeGPX = `<gpx version="1.1">
  <rte>
    <rtept lat="46.2" lon="6.14"/>
    <rtept lat="46.5" lon="6.63"/>
  </rte>
</gpx>`

func TestParseTrack(t *testing.T) {
	track, err := Parse(strings.NewReader(trackGPX))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if track.Source != TrackPoint {
		t.Errorf("Expected source %s, got %s", TrackPoint, track.Source)
	}
	if len(track.Path) != 3 {
		t.Fatalf("Expected 3 points across segments, got %d", len(track.Path))
	}
	if track.Path[2].Lng != 12 {
		t.Errorf("Unexpected last point: %+v", track.Path[2])
	}

	wantLength := 2 * geo.EarthRadiusMeters * math.Pi / 180
	if math.Abs(track.Length-wantLength) > 1e-6 {
		t.Errorf("Expected length %f, got %f", wantLength, track.Length)
	}
	if track.Duration != 3600.5 {
		t.Errorf("Expected duration 3600.5 s, got %v", track.Duration)
	}
}

func TestParseRouteFallback(t *testing.T) {
	track, err := Parse(strings.NewReader(routeGPX))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if track.Source != RoutePoint || len(track.Path) != 2 {
		t.Errorf("Expected 2 route points, got %d from %s", len(track.Path), track.Source)
	}
	if track.Duration != 0 {
		t.Errorf("Expected no duration without timestamps, got %v", track.Duration)
	}
	if track.Length <= 0 {
		t.Errorf("Expected a positive length, got %v", track.Length)
	}
}

func TestParseUntimedPointBreaksDuration(t *testing.T) {
	doc := `<gpx><trk><trkseg>
      <trkpt lat="1" lon="1"><time>2024-05-01T10:00:00Z</time></trkpt>
      <trkpt lat="1" lon="2"></trkpt>
      <trkpt lat="1" lon="3"><time>2024-05-01T12:00:00Z</time></trkpt>
      <trkpt lat="1" lon="4"><time>2024-05-01T12:10:00Z</time></trkpt>
    </trkseg></trk></gpx>`

	track, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if track.Duration != 600 {
		t.Errorf("Expected 600 s, got %v", track.Duration)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		noPoint bool
	}{
		{name: "No points", doc: `<gpx><wpt lat="1" lon="1"/></gpx>`, noPoint: true},
		{name: "Empty document", doc: ``, noPoint: true},
		{name: "Malformed XML", doc: `<gpx><trk><trkpt lat="1" lon="1"></trk>`},
		{name: "Invalid latitude", doc: `<gpx><trk><trkseg><trkpt lat="north" lon="1"/></trkseg></trk></gpx>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("Expected an error")
			}
			if errors.Is(err, ErrNoPoints) != tt.noPoint {
				t.Errorf("Unexpected error kind: %v", err)
			}
		})
	}
}

func TestParseRejectsInvalidCoordinates(t *testing.T) {
	for _, attrs := range []string{
		`lat="NaN" lon="1"`,
		`lat="1" lon="Inf"`,
		`lat="-Inf" lon="1"`,
		`lat="91" lon="1"`,
		`lat="1" lon="181"`,
		`lat="0" lon="0"`,
	} {
		t.Run(attrs, func(t *testing.T) {
			doc := `<gpx><trk><trkseg><trkpt lat="1" lon="1"/><trkpt ` + attrs + `/></trkseg></trk></gpx>`
			_, err := Parse(strings.NewReader(doc))
			if !errors.Is(err, ErrInvalidPoint) {
				t.Errorf("Expected ErrInvalidPoint, got %v", err)
			}
		})
	}
}
