// Package damerau computes the restricted Damerau-Levenshtein distance, also
// known as the optimal string alignment distance: Levenshtein plus the swap
// of two adjacent bytes, with no substring edited more than once.
//
// Under this metric "ca" and "abc" are 3 apart, not 2.
package damerau

import (
	"github.com/coregx/editdist/internal/diag"
	"github.com/coregx/editdist/lane"
	"github.com/coregx/editdist/vec"
)

// Engine computes restricted Damerau-Levenshtein distances on one backend.
// It is safe for concurrent use.
type Engine struct {
	backend vec.Backend
}

// New returns an Engine running on b.
func New(b vec.Backend) *Engine {
	return &Engine{backend: b}
}

// Backend returns the engine's backend.
func (e *Engine) Backend() vec.Backend { return e.backend }

// Distance returns the restricted Damerau-Levenshtein distance on the
// process-wide backend.
func Distance(a, b []byte) int {
	return New(vec.Resolve()).Distance(a, b)
}

// Bounded returns the distance if it is at most k, on the process-wide
// backend.
func Bounded(a, b []byte, k int) (int, bool) {
	return New(vec.Resolve()).Bounded(a, b, k)
}

// Distance returns the restricted Damerau-Levenshtein distance between a and b.
func (e *Engine) Distance(a, b []byte) int {
	d, _ := e.run(a, b, max(len(a), len(b)), false)
	return d
}

// Bounded returns the distance and true if it is at most k, and (0, false)
// otherwise.
func (e *Engine) Bounded(a, b []byte, k int) (int, bool) {
	if k < 0 {
		return 0, false
	}
	return e.run(a, b, min(k, max(len(a), len(b))), true)
}

func (e *Engine) run(a, b []byte, k int, bounded bool) (int, bool) {
	w := lane.Select(k, bounded)
	lane.Check(w, k+1)
	switch w {
	case lane.Eight:
		return diag.Distance(vec.KernelFor[uint8](e.backend), a, b, k, true)
	case lane.Sixteen:
		return diag.Distance(vec.KernelFor[uint16](e.backend), a, b, k, true)
	default:
		return diag.Distance(vec.KernelFor[uint32](e.backend), a, b, k, true)
	}
}
