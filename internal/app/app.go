package app

import (
	"log/slog"

	"tripcore.trainlog.org/internal/carbon"
	"tripcore.trainlog.org/internal/config"
	"tripcore.trainlog.org/internal/gtfs"
	"tripcore.trainlog.org/internal/search"
)

// Application wires the services behind the HTTP API.
type Application struct {
	Config         *config.Config
	SearchService  *search.SearchService
	CatalogService *gtfs.CatalogService
	DieselShares   carbon.DieselShares
	Logger         *slog.Logger
	Version        string
}

// New creates and wires all dependencies for the Application.
func New(cfg *config.Config, logger *slog.Logger, version string) *Application {
	sessions := search.NewSessionStore()
	catalogStore := gtfs.NewCatalogStore()

	return &Application{
		Config:         cfg,
		SearchService:  search.NewSearchService(sessions, logger, cfg.SearchLimit),
		CatalogService: gtfs.NewCatalogService(catalogStore, cfg.CatalogDir, logger),
		DieselShares:   carbon.DieselShares(cfg.DieselShares),
		Logger:         logger,
		Version:        version,
	}
}
