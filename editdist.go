// Package editdist computes Hamming, Levenshtein and restricted
// Damerau-Levenshtein distances and runs approximate substring search over
// byte sequences.
//
// The dynamic programs are laid out along anti-diagonals so that whole
// diagonals are computed with lane-parallel vector kernels. The kernel backend
// (scalar, 64-bit SWAR or 256-bit SWAR) is chosen once per process from the
// CPU features and can be pinned with the EDITDIST_BACKEND environment
// variable or per Engine through Config. All backends return identical results.
//
// Basic usage:
//
//	d := editdist.LevenshteinDistance([]byte("kitten"), []byte("sitting")) // 3
//
//	// Stop early once the distance is known to exceed 2.
//	if d, ok := editdist.LevenshteinDistanceBounded(a, b, 2); ok {
//	    fmt.Println("close:", d)
//	}
//
//	for m := range editdist.LevenshteinSearch([]byte("abc"), text, 1) {
//	    fmt.Println(m.Start, m.End, m.K)
//	}
//
// Advanced usage:
//
//	cfg := editdist.DefaultConfig()
//	cfg.Backend = "scalar"
//	cfg.Strategy = levenshtein.BitVector
//	eng, err := editdist.NewEngine(cfg)
//
// Inputs are raw bytes: no Unicode normalisation is applied, and a multi-byte
// UTF-8 character counts as several positions.
package editdist

import (
	"iter"
	"sync"

	"github.com/coregx/editdist/levenshtein"
	"github.com/coregx/editdist/search"
	"github.com/coregx/editdist/vec"
)

// Match is one approximate occurrence: text[Start:End] is within K edits of
// the pattern.
type Match = search.Match

// Edit is one step of a Levenshtein alignment: Match, Mismatch, AGap (b[j]
// inserted) or BGap (a[i] deleted).
type Edit = levenshtein.Edit

var defaultEngine = sync.OnceValue(func() *Engine {
	return newEngine(DefaultConfig(), vec.Resolve())
})

// Default returns the Engine behind the package-level functions.
func Default() *Engine {
	return defaultEngine()
}

// HammingDistance counts the positions where a and b differ. It returns a
// *LengthMismatchError, matching ErrLengthMismatch, if the lengths differ.
func HammingDistance(a, b []byte) (int, error) {
	return defaultEngine().HammingDistance(a, b)
}

// LevenshteinDistance returns the Levenshtein distance between a and b.
func LevenshteinDistance(a, b []byte) int {
	return defaultEngine().LevenshteinDistance(a, b)
}

// LevenshteinDistanceBounded returns the Levenshtein distance and true if it
// is at most k. Otherwise it returns (0, false), usually after examining only
// a band of width 2k+1 around the main diagonal.
func LevenshteinDistanceBounded(a, b []byte, k int) (int, bool) {
	return defaultEngine().LevenshteinDistanceBounded(a, b, k)
}

// LevenshteinTrace returns the Levenshtein distance and an optimal sequence of
// edits turning a into b. It keeps the whole DP matrix, so use it on short
// inputs.
func LevenshteinTrace(a, b []byte) (int, []Edit) {
	return defaultEngine().LevenshteinTrace(a, b)
}

// DamerauLevenshteinDistance returns the restricted Damerau-Levenshtein
// (optimal string alignment) distance between a and b.
func DamerauLevenshteinDistance(a, b []byte) int {
	return defaultEngine().DamerauLevenshteinDistance(a, b)
}

// DamerauLevenshteinDistanceBounded is the bounded form of
// DamerauLevenshteinDistance.
func DamerauLevenshteinDistanceBounded(a, b []byte, k int) (int, bool) {
	return defaultEngine().DamerauLevenshteinDistanceBounded(a, b, k)
}

// LevenshteinSearch yields a Match for every end offset in text where some
// substring ending there is within k edits of pattern. Matches come in
// increasing End order and overlapping matches are not merged. A negative k
// yields nothing.
func LevenshteinSearch(pattern, text []byte, k int) iter.Seq[Match] {
	return defaultEngine().LevenshteinSearch(pattern, text, k)
}

// LevenshteinSearchAll collects LevenshteinSearch into a slice, rejecting a
// negative k with ErrNegativeBound.
func LevenshteinSearchAll(pattern, text []byte, k int) ([]Match, error) {
	return defaultEngine().LevenshteinSearchAll(pattern, text, k)
}

// HammingSearch yields every alignment of needle in haystack with at most k
// mismatches. A negative k yields nothing.
func HammingSearch(needle, haystack []byte, k int) iter.Seq[Match] {
	return defaultEngine().HammingSearch(needle, haystack, k)
}

// HammingSearchAll collects HammingSearch into a slice, rejecting a negative k
// with ErrNegativeBound.
func HammingSearchAll(needle, haystack []byte, k int) ([]Match, error) {
	return defaultEngine().HammingSearchAll(needle, haystack, k)
}
