package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"tripcore.trainlog.org/internal/gtfs"
	"tripcore.trainlog.org/internal/models"
	"tripcore.trainlog.org/internal/search"
)

type rankRequest struct {
	Term       string             `json:"term"`
	Candidates []models.Candidate `json:"candidates"`
	Limit      *int               `json:"limit"`
}

func (app *Application) rankHandler(w http.ResponseWriter, r *http.Request) {
	var req rankRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, err)
		return
	}

	results := app.SearchService.Rank(req.Term, req.Candidates, app.SearchService.Limit(req.Limit))
	app.writeJSON(w, http.StatusOK, envelope{"results": results})
}

type matchRequest struct {
	Term  string   `json:"term"`
	Items []string `json:"items"`
}

func (app *Application) matchHandler(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, err)
		return
	}

	app.writeJSON(w, http.StatusOK, envelope{"matches": app.SearchService.Match(req.Term, req.Items)})
}

// stationResult is a ranked catalog station.
type stationResult struct {
	models.ScoredCandidate
	Station models.StationEntry `json:"station"`
}

// stationSearchHandler ranks the stations of one feed whose label contains q.
// The optional session parameter folds in the stations picked earlier in
// that search session.
func (app *Application) stationSearchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	feedID := query.Get("feed")
	if feedID == "" {
		app.badRequestResponse(w, errors.New("feed is required"))
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		app.badRequestResponse(w, err)
		return
	}

	catalog, err := app.CatalogService.Catalog(feedID)
	if err != nil {
		if errors.Is(err, gtfs.ErrUnknownFeed) {
			app.notFoundResponse(w, err)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	term := strings.TrimSpace(query.Get("q"))
	ranked := app.SearchService.RankStations(query.Get("session"), term, catalog.Search(term), app.SearchService.Limit(limit))

	results := make([]stationResult, 0, len(ranked))
	for _, sc := range ranked {
		entry, _ := catalog.Lookup(sc.Label)
		results = append(results, stationResult{ScoredCandidate: sc, Station: entry})
	}
	app.writeJSON(w, http.StatusOK, envelope{"results": results})
}

type visitRequest struct {
	Label string   `json:"label"`
	Lat   *float64 `json:"lat"`
	Lng   *float64 `json:"lng"`
	Feed  string   `json:"feed"`
}

// recordVisitHandler stores a picked station in the session cache. The
// coordinates come from the body, or from the feed catalog when only a feed
// is given.
func (app *Application) recordVisitHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

	var req visitRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, err)
		return
	}
	if strings.TrimSpace(req.Label) == "" {
		app.badRequestResponse(w, errors.New("label is required"))
		return
	}
	if (req.Lat == nil) != (req.Lng == nil) {
		app.badRequestResponse(w, errors.New("lat and lng must be given together"))
		return
	}

	var ref *search.StationRef
	switch {
	case req.Lat != nil:
		ref = &search.StationRef{Coordinates: models.GeoPoint{Lat: *req.Lat, Lng: *req.Lng}, Label: req.Label}
	case req.Feed != "":
		catalog, err := app.CatalogService.Catalog(req.Feed)
		if err != nil {
			if errors.Is(err, gtfs.ErrUnknownFeed) {
				app.notFoundResponse(w, err)
				return
			}
			app.serverErrorResponse(w, r, err)
			return
		}
		if entry, ok := catalog.Lookup(req.Label); ok {
			ref = &search.StationRef{Coordinates: entry.Coordinates, Label: entry.Label}
		}
	}

	app.SearchService.RecordVisit(sessionID, req.Label, ref)

	cache := app.SearchService.Sessions.Get(sessionID)
	app.writeJSON(w, http.StatusOK, envelope{
		"session": sessionID,
		"label":   req.Label,
		"visits":  cache.Visits(req.Label),
	})
}

func (app *Application) endSessionHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

	if !app.SearchService.EndSession(sessionID) {
		app.notFoundResponse(w, errors.New("unknown session"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
