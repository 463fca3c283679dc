package search

import (
	"sync"

	"tripcore.trainlog.org/internal/models"
)

// StationRef is what the map layer needs once a station label is picked.
type StationRef struct {
	Coordinates models.GeoPoint `json:"coordinates"`
	Label       string          `json:"label"`
}

// StationCache holds the stations seen during one search session, keyed by
// display label, together with how often each label was picked.
// It is populated while the user types and cleared on navigation.
type StationCache struct {
	mu      sync.RWMutex
	entries map[string]StationRef
	visits  map[string]int
}

// NewStationCache creates an empty StationCache.
func NewStationCache() *StationCache {
	return &StationCache{
		entries: make(map[string]StationRef),
		visits:  make(map[string]int),
	}
}

// Set stores the reference for a display label, replacing any previous one.
func (c *StationCache) Set(displayLabel string, ref StationRef) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[displayLabel] = ref
}

// Get returns the reference stored for displayLabel.
func (c *StationCache) Get(displayLabel string) (StationRef, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ref, ok := c.entries[displayLabel]
	return ref, ok
}

// RecordVisit increments the pick count of label.
func (c *StationCache) RecordVisit(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visits[label]++
}

// Visits returns how many times label was picked.
func (c *StationCache) Visits(label string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.visits[label]
}

// Len returns the number of cached station references.
func (c *StationCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear drops every reference and visit count.
func (c *StationCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]StationRef)
	c.visits = make(map[string]int)
}

// WithVisits returns a copy of candidates where every candidate without
// occurrences takes the session's visit count for its label.
func (c *StationCache) WithVisits(candidates []Candidate) []Candidate {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Candidate, len(candidates))
	for i, cand := range candidates {
		if cand.Occurrences == 0 {
			cand.Occurrences = c.visits[cand.Label]
		}
		out[i] = cand
	}
	return out
}

// SessionStore owns one StationCache per session ID.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*StationCache
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*StationCache)}
}

// Get returns the cache for sessionID, creating it on first use.
func (s *SessionStore) Get(sessionID string) *StationCache {
	s.mu.Lock()
	defer s.mu.Unlock()
	cache, ok := s.sessions[sessionID]
	if !ok {
		cache = NewStationCache()
		s.sessions[sessionID] = cache
	}
	return cache
}

// Lookup returns the cache for sessionID without creating one.
func (s *SessionStore) Lookup(sessionID string) (*StationCache, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cache, ok := s.sessions[sessionID]
	return cache, ok
}

// End clears and forgets the cache of sessionID. It reports whether the
// session existed.
func (s *SessionStore) End(sessionID string) bool {
	s.mu.Lock()
	cache, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if ok {
		cache.Clear()
	}
	return ok
}

// Entries returns the total number of cached station references across
// all sessions.
func (s *SessionStore) Entries() int {
	s.mu.Lock()
	caches := make([]*StationCache, 0, len(s.sessions))
	for _, c := range s.sessions {
		caches = append(caches, c)
	}
	s.mu.Unlock()

	total := 0
	for _, c := range caches {
		total += c.Len()
	}
	return total
}
