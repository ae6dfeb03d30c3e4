package editdist

import (
	"iter"

	"github.com/coregx/editdist/damerau"
	"github.com/coregx/editdist/hamming"
	"github.com/coregx/editdist/levenshtein"
	"github.com/coregx/editdist/search"
	"github.com/coregx/editdist/vec"
)

// Engine runs every operation with one fixed configuration.
//
// An Engine is immutable and safe to use concurrently from multiple
// goroutines; each call allocates its own working state.
type Engine struct {
	config  Config
	backend vec.Backend

	ham  *hamming.Engine
	lev  *levenshtein.Engine
	dl   *damerau.Engine
	srch *search.Searcher
}

// NewEngine validates cfg and returns an Engine for it.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, err := cfg.backend()
	if err != nil {
		return nil, err
	}
	return newEngine(cfg, b), nil
}

func newEngine(cfg Config, b vec.Backend) *Engine {
	return &Engine{
		config:  cfg,
		backend: b,
		ham:     hamming.New(b),
		lev: levenshtein.New(levenshtein.Options{
			Backend:        b,
			Strategy:       cfg.Strategy,
			MyersThreshold: cfg.MyersThreshold,
		}),
		dl: damerau.New(b),
		srch: search.New(search.Options{
			Backend:     b,
			Prefilter:   cfg.EnablePrefilter,
			MinPieceLen: cfg.MinPieceLen,
		}),
	}
}

// Backend returns the backend the engine runs on.
func (e *Engine) Backend() vec.Backend { return e.backend }

// Config returns the configuration e was built from.
func (e *Engine) Config() Config { return e.config }

// HammingDistance counts the positions where a and b differ.
func (e *Engine) HammingDistance(a, b []byte) (int, error) {
	return e.ham.Distance(a, b)
}

// LevenshteinDistance returns the minimum number of single-byte insertions,
// deletions and substitutions turning a into b.
func (e *Engine) LevenshteinDistance(a, b []byte) int {
	return e.lev.Distance(a, b)
}

// LevenshteinDistanceBounded returns the Levenshtein distance and true if it
// is at most k, and (0, false) otherwise.
func (e *Engine) LevenshteinDistanceBounded(a, b []byte, k int) (int, bool) {
	return e.lev.Bounded(a, b, k)
}

// LevenshteinTrace returns the Levenshtein distance and an optimal alignment
// of a against b.
func (e *Engine) LevenshteinTrace(a, b []byte) (int, []Edit) {
	return e.lev.Trace(a, b)
}

// DamerauLevenshteinDistance returns the restricted Damerau-Levenshtein
// distance between a and b.
func (e *Engine) DamerauLevenshteinDistance(a, b []byte) int {
	return e.dl.Distance(a, b)
}

// DamerauLevenshteinDistanceBounded returns the restricted Damerau-Levenshtein
// distance and true if it is at most k, and (0, false) otherwise.
func (e *Engine) DamerauLevenshteinDistanceBounded(a, b []byte, k int) (int, bool) {
	return e.dl.Bounded(a, b, k)
}

// LevenshteinSearch yields every end offset in text where a substring of text
// is within k edits of pattern, in increasing End order.
func (e *Engine) LevenshteinSearch(pattern, text []byte, k int) iter.Seq[Match] {
	return e.srch.Search(pattern, text, k)
}

// LevenshteinSearchAll collects LevenshteinSearch into a slice. It returns
// ErrNegativeBound when k < 0.
func (e *Engine) LevenshteinSearchAll(pattern, text []byte, k int) ([]Match, error) {
	return e.srch.Collect(pattern, text, k)
}

// HammingSearch yields every alignment of needle in haystack with at most k
// mismatching bytes, in increasing Start order.
func (e *Engine) HammingSearch(needle, haystack []byte, k int) iter.Seq[Match] {
	return e.ham.Search(needle, haystack, k)
}

// HammingSearchAll collects HammingSearch into a slice. It returns
// ErrNegativeBound when k < 0.
func (e *Engine) HammingSearchAll(needle, haystack []byte, k int) ([]Match, error) {
	if k < 0 {
		return nil, ErrNegativeBound
	}
	var out []Match
	for m := range e.ham.Search(needle, haystack, k) {
		out = append(out, m)
	}
	return out, nil
}
