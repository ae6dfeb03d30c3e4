// Package levenshtein computes Levenshtein (edit) distances.
//
// Three interchangeable algorithms are available (see Strategy): the banded
// anti-diagonal DP, Myers' bit-vector algorithm, and the banded DP under a
// doubling bound. Bounded calls return (0, false) as soon as the distance is
// known to exceed the bound.
//
// Basic usage:
//
//	d := levenshtein.Distance([]byte("kitten"), []byte("sitting")) // 3
//
//	if d, ok := levenshtein.Bounded(a, b, 2); ok {
//		// d <= 2
//	}
package levenshtein

import (
	"github.com/coregx/editdist/internal/diag"
	"github.com/coregx/editdist/lane"
	"github.com/coregx/editdist/vec"
)

// DefaultMyersThreshold is the shorter-input length above which Auto switches
// to the bit-vector algorithm.
const DefaultMyersThreshold = 64

// exponentialStart is the smallest bound the exponential strategy tries.
const exponentialStart = 32

// Options configures an Engine.
type Options struct {
	// Backend is the vector backend the diagonal DP runs on.
	Backend vec.Backend

	// Strategy selects the algorithm.
	Strategy Strategy

	// MyersThreshold is the shorter-input length above which Auto uses
	// BitVector. Zero means DefaultMyersThreshold.
	MyersThreshold int
}

// DefaultOptions returns Auto on the process-wide backend.
func DefaultOptions() Options {
	return Options{
		Backend:        vec.Resolve(),
		Strategy:       Auto,
		MyersThreshold: DefaultMyersThreshold,
	}
}

// Engine computes Levenshtein distances. It is immutable and safe for
// concurrent use.
type Engine struct {
	opts Options
}

// New returns an Engine with the given options.
func New(opts Options) *Engine {
	if opts.MyersThreshold <= 0 {
		opts.MyersThreshold = DefaultMyersThreshold
	}
	return &Engine{opts: opts}
}

// Distance returns the Levenshtein distance using DefaultOptions.
func Distance(a, b []byte) int {
	return New(DefaultOptions()).Distance(a, b)
}

// Bounded returns the Levenshtein distance if it is at most k, using
// DefaultOptions.
func Bounded(a, b []byte, k int) (int, bool) {
	return New(DefaultOptions()).Bounded(a, b, k)
}

// Options returns the options e was built with.
func (e *Engine) Options() Options { return e.opts }

// Distance returns the Levenshtein distance between a and b.
func (e *Engine) Distance(a, b []byte) int {
	d, _ := e.compute(a, b, max(len(a), len(b)), false)
	return d
}

// Bounded returns the distance and true if it is at most k, and (0, false)
// otherwise. A negative k always reports false.
func (e *Engine) Bounded(a, b []byte, k int) (int, bool) {
	if k < 0 {
		return 0, false
	}
	return e.compute(a, b, k, true)
}

func (e *Engine) compute(a, b []byte, k int, bounded bool) (int, bool) {
	switch e.pick(a, b) {
	case BitVector:
		return e.BitVector(a, b, k, bounded)
	case Exponential:
		return e.exponential(a, b, k)
	default:
		return e.Diagonal(a, b, k, bounded)
	}
}

func (e *Engine) pick(a, b []byte) Strategy {
	if e.opts.Strategy != Auto {
		return e.opts.Strategy
	}
	if min(len(a), len(b)) > e.opts.MyersThreshold {
		return BitVector
	}
	return Diagonal
}

// Diagonal runs the anti-diagonal DP. Bounded runs restrict work to the band
// |i-j| <= k and use the narrowest lane width that holds k+1; unbounded runs
// use 32-bit lanes.
func (e *Engine) Diagonal(a, b []byte, k int, bounded bool) (int, bool) {
	if !bounded {
		k = max(len(a), len(b))
	}
	if k < 0 {
		return 0, false
	}
	// No distance exceeds the longer length.
	k = min(k, max(len(a), len(b)))

	w := lane.Select(k, bounded)
	lane.Check(w, k+1)
	switch w {
	case lane.Eight:
		return diag.Distance(vec.KernelFor[uint8](e.opts.Backend), a, b, k, false)
	case lane.Sixteen:
		return diag.Distance(vec.KernelFor[uint16](e.opts.Backend), a, b, k, false)
	default:
		return diag.Distance(vec.KernelFor[uint32](e.opts.Backend), a, b, k, false)
	}
}

// BitVector runs Myers' bit-parallel algorithm.
func (e *Engine) BitVector(a, b []byte, k int, bounded bool) (int, bool) {
	if !bounded {
		k = max(len(a), len(b))
	}
	return myers(a, b, k)
}

// Exponential returns the distance by running the banded DP with bounds
// max(|len(a)-len(b)|, 32), then twice that, and so on until it succeeds.
// Near-identical long inputs finish in the first, narrow band.
func (e *Engine) Exponential(a, b []byte) int {
	d, _ := e.exponential(a, b, max(len(a), len(b)))
	return d
}

func (e *Engine) exponential(a, b []byte, k int) (int, bool) {
	if k < 0 {
		return 0, false
	}
	gap := len(a) - len(b)
	if gap < 0 {
		gap = -gap
	}
	if gap > k {
		return 0, false
	}
	for bound := min(max(gap, exponentialStart), k); ; bound = min(2*bound, k) {
		if d, ok := e.Diagonal(a, b, bound, true); ok {
			return d, true
		}
		if bound == k {
			return 0, false
		}
	}
}
