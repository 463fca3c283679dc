package search

import (
	"strings"
)

// Composite score weights. Occurrences are deliberately left unnormalized:
// a frequently visited station outranks a perfect text match.
const (
	OccurrenceWeight = 0.3
	SimilarityWeight = 0.5
	PositionWeight   = 0.8
)

// Similarity returns 1 - distance/maxLength for the case-folded inputs,
// in [0, 1]. Two empty strings are identical and score 1.
func Similarity(term, label string) float64 {
	a, b := strings.ToLower(term), strings.ToLower(label)
	maxLength := max(utf16Len(a), utf16Len(b))
	if maxLength == 0 {
		return 1
	}
	distance := LevenshteinDistance(a, b)
	return float64(maxLength-distance) / float64(maxLength)
}

// PositionScore rewards labels containing term early on: 1/(index+1) where
// index is the UTF-16 offset of the first case-insensitive match, or 0 when
// term does not occur in label. An empty term matches at offset 0.
func PositionScore(term, label string) float64 {
	haystack := strings.ToLower(label)
	idx := strings.Index(haystack, strings.ToLower(term))
	if idx < 0 {
		return 0
	}
	position := utf16Len(haystack[:idx])
	return 1 / float64(position+1)
}

// CompositeScore combines occurrences, similarity and position score.
func CompositeScore(occurrences int, similarity, positionScore float64) float64 {
	return float64(occurrences)*OccurrenceWeight + similarity*SimilarityWeight + positionScore*PositionWeight
}

// score decorates a single candidate for term.
func score(term string, c Candidate) ScoredCandidate {
	similarity := Similarity(term, c.Label)
	position := PositionScore(term, c.Label)
	return ScoredCandidate{
		Candidate:      c,
		Similarity:     similarity,
		PositionScore:  position,
		CompositeScore: CompositeScore(c.Occurrences, similarity, position),
	}
}
