package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	remoteGtfs "github.com/jamespfennell/gtfs"

	"tripcore.trainlog.org/internal/config"
	"tripcore.trainlog.org/internal/gtfs"
)

func ptr(f float64) *float64 { return &f }

// newTestApplication returns an Application with an "sbb" catalog loaded.
func newTestApplication(t *testing.T) *Application {
	t.Helper()

	cfg := &config.Config{
		Port:         4000,
		Env:          "testing",
		SearchLimit:  20,
		GapKm:        50,
		CatalogDir:   t.TempDir(),
		Feeds:        []string{"sbb"},
		MetricsTTL:   10 * time.Second,
		DieselShares: map[string]float64{"default": 0.1},
	}

	app := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), "test-version")

	zurich := &remoteGtfs.Stop{Id: "8503000", Name: "Zürich HB", Type: 1, Latitude: ptr(47.3782), Longitude: ptr(8.5402)}
	stops := []remoteGtfs.Stop{
		*zurich,
		{Id: "8503000:0:7", Name: "Zürich HB", Type: 0, Parent: zurich, Latitude: ptr(47.3779), Longitude: ptr(8.5399)},
		{Id: "8500010", Name: "Basel SBB", Type: 1, Latitude: ptr(47.5475), Longitude: ptr(7.5896)},
		{Id: "bus-1", Name: "Genève, Cornavin", Type: 0, Latitude: ptr(46.2101), Longitude: ptr(6.1424)},
	}
	app.CatalogService.Store.Set("sbb", gtfs.NewCatalog("sbb", stops))

	return app
}

// serve sends a request through the full router.
func serve(t *testing.T, app *Application, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	app.Routes(ctx).ServeHTTP(rr, req)
	return rr
}

func assertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("status = %d, want %d; body: %s", rr.Code, want, rr.Body.String())
	}
}

