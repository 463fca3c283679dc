package search

import "testing"

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "both empty", a: "", b: "", want: 0},
		{name: "empty a", a: "", b: "abc", want: 3},
		{name: "empty b", a: "abc", b: "", want: 3},
		{name: "identical", a: "Lausanne", b: "Lausanne", want: 0},
		{name: "kitten sitting", a: "kitten", b: "sitting", want: 3},
		{name: "flaw lawn", a: "flaw", b: "lawn", want: 2},
		{name: "single substitution", a: "Bern", b: "Berg", want: 1},
		{name: "accent is one unit", a: "café", b: "cafe", want: 1},
		{name: "flag emoji is four units", a: "🇨🇭", b: "", want: 4},
		{name: "flags differ in two units", a: "🇨🇭 Basel", b: "🇩🇪 Basel", want: 2},
		{name: "case sensitive", a: "a", b: "A", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevenshteinDistance(tt.a, tt.b); got != tt.want {
				t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLevenshteinDistanceSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"Paris Nord", "Paris Est"},
		{"Zürich HB", "Zurich"},
		{"", "Basel SBB"},
		{"Genève", "Geneva"},
	}
	for _, p := range pairs {
		ab := LevenshteinDistance(p[0], p[1])
		ba := LevenshteinDistance(p[1], p[0])
		if ab != ba {
			t.Errorf("Expected symmetric distance for %q/%q, got %d and %d", p[0], p[1], ab, ba)
		}
	}
}
