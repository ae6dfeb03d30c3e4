package naive

import (
	"slices"
	"testing"
)

func TestKnownDistances(t *testing.T) {
	tests := []struct {
		a, b    string
		lev, dl int
	}{
		{"", "", 0, 0},
		{"", "abc", 3, 3},
		{"kitten", "sitting", 3, 3},
		{"ab", "ba", 2, 1},
		{"abc", "cab", 2, 2},
		{"ca", "abc", 3, 3},
		{"flaw", "lawn", 2, 2},
	}
	for _, tt := range tests {
		if got := Levenshtein([]byte(tt.a), []byte(tt.b)); got != tt.lev {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.lev)
		}
		if got := Damerau([]byte(tt.a), []byte(tt.b)); got != tt.dl {
			t.Errorf("Damerau(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.dl)
		}
	}
}

func TestSearch(t *testing.T) {
	got := Search([]byte("abc"), []byte("xxabdxx"), 1)
	want := []Match{
		{Start: 2, End: 4, K: 1},
		{Start: 2, End: 5, K: 1},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Search = %+v, want %+v", got, want)
	}
}

func TestHamming(t *testing.T) {
	if Hamming([]byte("a"), []byte("ab")) != -1 {
		t.Error("length mismatch not reported")
	}
	if got := HammingSearch([]byte("ab"), []byte("abxbab"), 1); len(got) != 3 {
		t.Errorf("HammingSearch = %+v", got)
	}
}
