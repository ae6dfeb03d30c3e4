// Package search finds approximate occurrences of a pattern in a text.
//
// Every text position j is scored by the smallest Levenshtein distance between
// the pattern and any substring of the text ending at j. Ends scoring at most
// k are reported in increasing order, one Match per end, without
// deduplicating overlapping matches.
//
// Three paths produce identical output:
//   - k == 0: exact occurrences found with simd.All
//   - pigeonhole prefilter: the pattern is cut into k+1 pieces, at least one of
//     which must occur verbatim in every match; an Aho-Corasick automaton finds
//     the pieces and the DP runs only around them
//   - full scan: the streaming DP over the whole text
package search

import (
	"iter"

	"github.com/coregx/editdist/lane"
	"github.com/coregx/editdist/simd"
	"github.com/coregx/editdist/vec"
)

// DefaultMinPieceLen is the shortest pigeonhole piece the prefilter accepts.
// Shorter pieces occur too often in ordinary text to narrow anything down.
const DefaultMinPieceLen = 4

// Options configures a Searcher.
type Options struct {
	// Backend is the vector backend the DP runs on.
	Backend vec.Backend

	// Prefilter enables the pigeonhole prefilter for k >= 1.
	Prefilter bool

	// MinPieceLen is the shortest piece length for which the prefilter is used.
	// Values below 1 are treated as 1.
	MinPieceLen int
}

// DefaultOptions returns options for the process-wide backend with the
// prefilter enabled.
func DefaultOptions() Options {
	return Options{
		Backend:     vec.Resolve(),
		Prefilter:   true,
		MinPieceLen: DefaultMinPieceLen,
	}
}

// Searcher runs approximate searches. It is immutable and safe for concurrent
// use; every search allocates its own state.
type Searcher struct {
	opts Options
}

// New returns a Searcher with the given options.
func New(opts Options) *Searcher {
	opts.MinPieceLen = max(opts.MinPieceLen, 1)
	return &Searcher{opts: opts}
}

// Search yields matches of pattern in text with at most k edits using
// DefaultOptions. A negative k yields nothing.
func Search(pattern, text []byte, k int) iter.Seq[Match] {
	return New(DefaultOptions()).Search(pattern, text, k)
}

// Options returns the options s was built with.
func (s *Searcher) Options() Options { return s.opts }

// Search yields every end offset in [0, len(text)] where some substring of
// text ending there is within k edits of pattern, in increasing End order.
// Stopping the iteration stops the scan. A negative k yields nothing.
func (s *Searcher) Search(pattern, text []byte, k int) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		if k < 0 {
			return
		}
		// Deleting the whole pattern always costs len(pattern).
		bound := min(k, len(pattern))

		switch {
		case bound == 0:
			exact(pattern, text, yield)
		case s.opts.Prefilter && len(pattern)/(bound+1) >= s.opts.MinPieceLen:
			s.prefiltered(pattern, text, bound, yield)
		default:
			s.runner(pattern, bound)(text, 0, 0, len(text), yield)
		}
	}
}

// Collect returns all matches as a slice, rejecting a negative k with
// ErrNegativeBound.
func (s *Searcher) Collect(pattern, text []byte, k int) ([]Match, error) {
	if k < 0 {
		return nil, ErrNegativeBound
	}
	var out []Match
	for m := range s.Search(pattern, text, k) {
		out = append(out, m)
	}
	return out, nil
}

// Scan runs the DP over the whole text with no exact path or prefilter.
// It is the reference the faster paths are tested against.
func (s *Searcher) Scan(pattern, text []byte, k int) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		if k < 0 {
			return
		}
		s.runner(pattern, min(k, len(pattern)))(text, 0, 0, len(text), yield)
	}
}

func exact(pattern, text []byte, yield func(Match) bool) {
	m := len(pattern)
	for pos := range simd.All(text, pattern) {
		if !yield(Match{Start: pos, End: pos + m}) {
			return
		}
	}
}

// runFunc scans text starting at absolute offset base and yields the matches
// ending in [lo, hi].
type runFunc func(text []byte, base, lo, hi int, yield func(Match) bool) bool

// runner sizes lanes to hold both the sentinel k+1 and alignment spans up to
// m+k, then returns a DP bound to that width.
func (s *Searcher) runner(pattern []byte, k int) runFunc {
	w := lane.ForValue(len(pattern) + k + 1)
	lane.Check(w, len(pattern)+k+1)
	switch w {
	case lane.Eight:
		return newScanner(vec.KernelFor[uint8](s.opts.Backend), pattern, k).run
	case lane.Sixteen:
		return newScanner(vec.KernelFor[uint16](s.opts.Backend), pattern, k).run
	default:
		return newScanner(vec.KernelFor[uint32](s.opts.Backend), pattern, k).run
	}
}

// scanRange reports matches ending in [lo, hi]. The DP starts m+k bytes
// before lo: no alignment with at most k edits is longer than that.
func scanRange(run runFunc, m, k int, text []byte, lo, hi int, yield func(Match) bool) bool {
	w := max(0, lo-m-k)
	return run(text[w:hi], w, lo, hi, yield)
}
