package app

import (
	"net/http"
)

// HealthStatus is the body of /v1/healthcheck.
//
// Feeds counts the station catalogs currently loaded. The service is ready
// once every configured feed has a catalog; with no feeds configured it is
// ready immediately, since ranking, path and trip endpoints need no data.
type HealthStatus struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
	Feeds       int    `json:"feeds"`
	Ready       bool   `json:"ready"`
}

func (app *Application) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	loaded := app.CatalogService.Store.FeedIDs()

	ready := true
	for _, feedID := range app.Config.Feeds {
		if _, ok := app.CatalogService.Store.Get(feedID); !ok {
			ready = false
			break
		}
	}

	status := HealthStatus{
		Status:      "available",
		Environment: app.Config.Env,
		Version:     app.Version,
		Feeds:       len(loaded),
		Ready:       ready,
	}

	code := http.StatusOK
	if !ready {
		code = http.StatusServiceUnavailable
	}
	app.writeJSON(w, code, status)
}
