// Package search ranks autocomplete candidates (stations, operators, tags)
// against a typed term.
//
// The core is pure and safe for concurrent use: Rank allocates only local
// state, and abandoning a stale keystroke is left to the caller. The
// stateful pieces (StationCache, SessionStore, SearchService) are explicit
// objects owned by whoever serves a search session.
package search

import (
	"cmp"
	"slices"

	"tripcore.trainlog.org/internal/models"
)

type (
	Candidate       = models.Candidate
	ScoredCandidate = models.ScoredCandidate
)

// DefaultLimit caps autocomplete dropdowns.
const DefaultLimit = 20

// Rank scores every candidate against term, sorts them best first and
// returns at most limit entries. Candidates with equal composite scores keep
// their input order. The input slice is not modified.
//
// A limit of zero or less, or an empty candidate list, yields an empty
// (non-nil) result.
func Rank(term string, candidates []Candidate, limit int) []ScoredCandidate {
	if limit <= 0 || len(candidates) == 0 {
		return []ScoredCandidate{}
	}

	scored := make([]ScoredCandidate, len(candidates))
	for i, c := range candidates {
		scored[i] = score(term, c)
	}

	slices.SortStableFunc(scored, func(a, b ScoredCandidate) int {
		return cmp.Compare(b.CompositeScore, a.CompositeScore)
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
