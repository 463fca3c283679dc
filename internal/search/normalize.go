package search

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningDiacritics is the Combining Diacritical Marks block (U+0300-U+036F).
var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// NormalizeForSearch lowercases s, strips accents and trims surrounding
// whitespace, so that "Čadca" and "cadca" compare equal.
func NormalizeForSearch(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningDiacritics)))
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		out = strings.ToLower(s)
	}
	return strings.TrimSpace(out)
}

// MatchByIndex keeps the items whose normalized form contains the normalized
// term and orders them by where the match starts. Items matching at the same
// offset keep their input order. Used for operator, material type and tag
// autocomplete, where popularity does not apply.
func MatchByIndex(term string, items []string) []string {
	needle := NormalizeForSearch(term)

	type match struct {
		value string
		index int
	}
	matches := make([]match, 0, len(items))
	for _, item := range items {
		idx := strings.Index(NormalizeForSearch(item), needle)
		if idx < 0 {
			continue
		}
		matches = append(matches, match{value: item, index: idx})
	}

	slices.SortStableFunc(matches, func(a, b match) int {
		return cmp.Compare(a.index, b.index)
	})

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.value
	}
	return out
}
