package gtfs

import (
	"slices"
	"sync"
)

// CatalogStore is a thread-safe in-memory store for station catalogs,
// indexed by feed ID.
type CatalogStore struct {
	mu   sync.RWMutex
	data map[string]*StationCatalog
}

// NewCatalogStore returns an empty CatalogStore. The underlying map is
// created on first Set.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{}
}

// Set stores the catalog for feedID, replacing any previous one.
func (s *CatalogStore) Set(feedID string, catalog *StationCatalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		s.data = make(map[string]*StationCatalog)
	}
	s.data[feedID] = catalog
}

// Get returns the catalog of feedID, if loaded.
func (s *CatalogStore) Get(feedID string) (*StationCatalog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	catalog, ok := s.data[feedID]
	return catalog, ok
}

// FeedIDs returns the loaded feed IDs in sorted order.
func (s *CatalogStore) FeedIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
