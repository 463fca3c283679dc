package search

import (
	"log/slog"
	"time"

	"tripcore.trainlog.org/internal/metrics"
)

// SearchService ranks candidates on behalf of the HTTP layer and keeps the
// per-session station caches.
type SearchService struct {
	Sessions     *SessionStore
	Logger       *slog.Logger
	DefaultLimit int
}

// NewSearchService creates a SearchService. A non-positive defaultLimit
// falls back to DefaultLimit.
func NewSearchService(sessions *SessionStore, logger *slog.Logger, defaultLimit int) *SearchService {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	return &SearchService{
		Sessions:     sessions,
		Logger:       logger,
		DefaultLimit: defaultLimit,
	}
}

// Limit resolves a requested limit: nil means the service default.
func (ss *SearchService) Limit(requested *int) int {
	if requested == nil {
		return ss.DefaultLimit
	}
	return *requested
}

// Rank ranks candidates as given.
func (ss *SearchService) Rank(term string, candidates []Candidate, limit int) []ScoredCandidate {
	start := time.Now()
	results := Rank(term, candidates, limit)
	metrics.ObserveRank("rank", len(candidates), time.Since(start))
	return results
}

// RankStations ranks station candidates, filling missing occurrence counts
// from the visits recorded in the session. Ranking never opens a session;
// only RecordVisit does.
func (ss *SearchService) RankStations(sessionID, term string, candidates []Candidate, limit int) []ScoredCandidate {
	start := time.Now()
	if cache, ok := ss.Sessions.Lookup(sessionID); ok {
		candidates = cache.WithVisits(candidates)
	}
	results := Rank(term, candidates, limit)
	metrics.ObserveRank("stations", len(candidates), time.Since(start))

	ss.Logger.Debug("Ranked stations", "session_id", sessionID, "candidates", len(candidates), "results", len(results))
	return results
}

// Match runs index-ordered matching for operators, material types and tags.
func (ss *SearchService) Match(term string, items []string) []string {
	start := time.Now()
	matches := MatchByIndex(term, items)
	metrics.ObserveRank("match", len(items), time.Since(start))
	return matches
}

// RecordVisit stores a picked station in the session cache.
func (ss *SearchService) RecordVisit(sessionID, label string, ref *StationRef) {
	cache := ss.Sessions.Get(sessionID)
	cache.RecordVisit(label)
	if ref != nil {
		cache.Set(label, *ref)
	}
	metrics.SetStationCacheEntries(ss.Sessions.Entries())
}

// EndSession clears the cache of a session that navigated away.
func (ss *SearchService) EndSession(sessionID string) bool {
	ended := ss.Sessions.End(sessionID)
	metrics.SetStationCacheEntries(ss.Sessions.Entries())
	if ended {
		ss.Logger.Info("Cleared search session", "session_id", sessionID)
	}
	return ended
}
