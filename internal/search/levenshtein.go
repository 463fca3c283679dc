package search

import "unicode/utf16"

// LevenshteinDistance returns the classic edit distance between a and b
// (insertions, deletions and substitutions all cost 1), compared by UTF-16
// code unit. Labels are measured the way the web client measures them, so
// a flag emoji counts as four units.
//
// It walks the (len(b)+1) x (len(a)+1) table row by row and keeps only the
// previous row, so it runs in O(len(a)*len(b)) time and O(len(a)) space.
func LevenshteinDistance(a, b string) int {
	return editDistance(utf16.Encode([]rune(a)), utf16.Encode([]rune(b)))
}

func editDistance[T comparable](a, b []T) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		for j := 1; j <= len(a); j++ {
			if b[i-1] == a[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = 1 + min(prev[j-1], curr[j-1], prev[j])
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// utf16Len returns the length of s in UTF-16 code units.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
