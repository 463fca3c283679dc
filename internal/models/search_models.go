package models

// Candidate is one searchable entity (a station, operator or tag name)
// together with how often the user picked it before.
type Candidate struct {
	Label       string `json:"label"`
	Occurrences int    `json:"occurrences"`
}

// ScoredCandidate is a Candidate decorated with the scores computed for one
// ranking call. It has no identity beyond the call that produced it.
type ScoredCandidate struct {
	Candidate
	Similarity     float64 `json:"similarity"`
	PositionScore  float64 `json:"position_score"`
	CompositeScore float64 `json:"composite_score"`
}
