package app

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"tripcore.trainlog.org/internal/carbon"
	"tripcore.trainlog.org/internal/duration"
	"tripcore.trainlog.org/internal/geo"
	"tripcore.trainlog.org/internal/gpx"
	"tripcore.trainlog.org/internal/metrics"
	"tripcore.trainlog.org/internal/models"
)

// maxSummaryPoints bounds the size of an interpolated path.
const maxSummaryPoints = 100000

type pathSummaryRequest struct {
	Path models.Path `json:"path"`
	// Interpolate subdivides long segments using the configured gap.
	Interpolate   bool     `json:"interpolate"`
	InterpolateKm *float64 `json:"interpolate_km"`
}

type pathSummary struct {
	Points      models.Path      `json:"points,omitempty"`
	LengthM     float64          `json:"length_m"`
	LengthKm    float64          `json:"length_km"`
	SegmentsM   []float64        `json:"segments_m"`
	CumulativeM []int            `json:"cumulative_m"`
	Bounds      *geo.BoundingBox `json:"bounds"`
}

func (app *Application) pathSummaryHandler(w http.ResponseWriter, r *http.Request) {
	var req pathSummaryRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, err)
		return
	}

	path := req.Path
	var (
		gapKm        float64
		interpolated bool
	)
	switch {
	case req.InterpolateKm != nil:
		if !(*req.InterpolateKm >= geo.MinGapKm) {
			app.badRequestResponse(w, fmt.Errorf("interpolate_km must be at least %v", geo.MinGapKm))
			return
		}
		gapKm, interpolated = *req.InterpolateKm, true
	case req.Interpolate:
		gapKm, interpolated = app.Config.GapKm, true
	}
	if interpolated {
		if n := geo.InterpolatedLen(path, gapKm); n > maxSummaryPoints {
			app.badRequestResponse(w, fmt.Errorf("interpolation would produce %d points, the limit is %d", n, maxSummaryPoints))
			return
		}
		path = geo.InterpolateGaps(path, gapKm)
	}

	length := geo.PathLength(path)
	metrics.ObservePathLength(length)

	resp := pathSummary{
		LengthM:     length,
		LengthKm:    geo.MetersToKm(length),
		SegmentsM:   geo.SegmentDistances(path),
		CumulativeM: geo.CumulativeDistances(path),
	}
	if interpolated {
		resp.Points = path
	}
	if bounds, err := geo.Bounds(path); err == nil {
		resp.Bounds = &bounds
	}

	app.writeJSON(w, http.StatusOK, resp)
}

func (app *Application) durationHandler(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("seconds")
	if raw == "" {
		app.badRequestResponse(w, errors.New("seconds is required"))
		return
	}
	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		app.badRequestResponse(w, errors.New("seconds must be a number"))
		return
	}

	breakdown, ok := duration.ClassifyDuration(seconds)
	if !ok {
		app.badRequestResponse(w, errors.New("seconds must be finite"))
		return
	}

	app.writeJSON(w, http.StatusOK, envelope{
		"breakdown": breakdown,
		"text":      duration.Format(breakdown),
	})
}

type gpxImport struct {
	Source    string      `json:"source"`
	Points    int         `json:"points"`
	Path      models.Path `json:"path"`
	LengthM   float64     `json:"length_m"`
	DurationS float64     `json:"duration_s"`
	Duration  string      `json:"duration"`
}

// gpxHandler imports a GPX document sent as the raw request body.
func (app *Application) gpxHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxGPXBody)

	track, err := gpx.Parse(r.Body)
	if err != nil {
		if errors.Is(err, gpx.ErrNoPoints) {
			metrics.ObserveGpxImport("no_points")
		} else {
			metrics.ObserveGpxImport("invalid")
		}
		app.Logger.Warn("Rejected GPX import", "error", err)
		app.badRequestResponse(w, err)
		return
	}
	metrics.ObserveGpxImport("ok")
	metrics.ObservePathLength(track.Length)

	app.writeJSON(w, http.StatusOK, gpxImport{
		Source:    track.Source,
		Points:    len(track.Path),
		Path:      track.Path,
		LengthM:   track.Length,
		DurationS: track.Duration,
		Duration:  duration.FormatSeconds(track.Duration),
	})
}

type carbonRequest struct {
	FootprintKg float64                           `json:"footprint_kg"`
	LengthM     float64                           `json:"length_m"`
	Countries   map[string]models.CountryDistance `json:"countries"`
}

type carbonSummary struct {
	CO2PerKm   float64  `json:"co2_per_km"`
	Color      string   `json:"color"`
	TextColor  string   `json:"text_color"`
	Label      string   `json:"label"`
	Total      string   `json:"total"`
	ElectricKm *float64 `json:"electric_km,omitempty"`
	DieselKm   *float64 `json:"diesel_km,omitempty"`
}

func (app *Application) carbonHandler(w http.ResponseWriter, r *http.Request) {
	var req carbonRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, err)
		return
	}
	if req.FootprintKg < 0 || req.LengthM < 0 {
		app.badRequestResponse(w, fmt.Errorf("footprint_kg and length_m must not be negative"))
		return
	}

	perKm := carbon.CO2PerKm(req.FootprintKg, req.LengthM)
	color := carbon.CarbonColor(perKm)

	resp := carbonSummary{
		CO2PerKm:  perKm,
		Color:     color,
		TextColor: carbon.TextColorFor(color),
		Label:     carbon.FormatCarbonValue(perKm, "/km"),
		Total:     carbon.FormatCarbonValue(req.FootprintKg, ""),
	}
	if len(req.Countries) > 0 {
		electric, diesel := carbon.SplitCountries(req.Countries, app.DieselShares)
		resp.ElectricKm, resp.DieselKm = &electric, &diesel
	}

	app.writeJSON(w, http.StatusOK, resp)
}
