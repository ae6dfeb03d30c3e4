// Package hamming computes Hamming distances and Hamming-bounded search.
package hamming

import (
	"errors"
	"fmt"
	"iter"

	"github.com/coregx/editdist/internal/conv"
	"github.com/coregx/editdist/lane"
	"github.com/coregx/editdist/search"
	"github.com/coregx/editdist/vec"
)

// ErrLengthMismatch is returned when Hamming distance is requested for inputs
// of different lengths.
var ErrLengthMismatch = errors.New("hamming: inputs have different lengths")

// LengthMismatchError reports the two lengths of a rejected pair.
type LengthMismatchError struct {
	LenA, LenB int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("hamming: inputs have different lengths (%d != %d)", e.LenA, e.LenB)
}

// Is lets errors.Is match ErrLengthMismatch.
func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}

// chunk bounds the scratch vector; inputs are processed chunk by chunk.
const chunk = 4096

// blockStarts is the number of alignment starts Search scores at once.
const blockStarts = 256

// Engine runs Hamming operations on one backend.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	backend vec.Backend
}

// New returns an Engine for backend b.
func New(b vec.Backend) *Engine {
	return &Engine{backend: b}
}

// Backend reports the backend e runs on.
func (e *Engine) Backend() vec.Backend { return e.backend }

// Distance counts mismatching positions using the process-wide backend.
func Distance(a, b []byte) (int, error) {
	return New(vec.Resolve()).Distance(a, b)
}

// Search yields every alignment of needle in haystack with at most k
// mismatches, using the process-wide backend.
func Search(needle, haystack []byte, k int) iter.Seq[search.Match] {
	return New(vec.Resolve()).Search(needle, haystack, k)
}

// Distance counts positions where a and b differ.
// It returns a *LengthMismatchError if the lengths differ.
func (e *Engine) Distance(a, b []byte) (int, error) {
	if len(a) != len(b) {
		return 0, &LengthMismatchError{LenA: len(a), LenB: len(b)}
	}
	k := vec.KernelFor[uint8](e.backend)
	scratch := make([]uint8, min(len(a), chunk))

	d := 0
	for off := 0; off < len(a); off += chunk {
		end := min(off+chunk, len(a))
		x := scratch[:end-off]
		k.Xor(x, a[off:end], b[off:end])
		d += k.CountNonZero(x)
	}
	return d, nil
}

// Search yields a Match for every offset s where needle differs from
// haystack[s:s+len(needle)] in at most k positions, in increasing order.
// A negative k yields nothing.
func (e *Engine) Search(needle, haystack []byte, k int) iter.Seq[search.Match] {
	return func(yield func(search.Match) bool) {
		if k < 0 || len(needle) > len(haystack) {
			return
		}
		// No alignment has more than len(needle) mismatches.
		bound := min(k, len(needle))
		w := lane.Select(bound, true)
		lane.Check(w, bound+1)
		switch w {
		case lane.Eight:
			searchLanes(vec.KernelFor[uint8](e.backend), needle, haystack, bound, yield)
		case lane.Sixteen:
			searchLanes(vec.KernelFor[uint16](e.backend), needle, haystack, bound, yield)
		default:
			searchLanes(vec.KernelFor[uint32](e.backend), needle, haystack, bound, yield)
		}
	}
}

// searchLanes scores blockStarts alignments at once: lane s holds the running
// mismatch count of the alignment starting at s. Counts saturate, so a lane
// width holding k+1 is enough.
func searchLanes[T vec.Lanes](k vec.Kernel[T], needle, haystack []byte, bound int, yield func(search.Match) bool) {
	m := len(needle)
	starts := len(haystack) - m + 1
	limit := conv.ToLane[T](bound)

	counts := vec.Alloc(k, blockStarts)
	text := vec.Alloc(k, blockStarts)
	want := vec.Alloc(k, blockStarts)
	ones := vec.Alloc(k, blockStarts)
	k.Broadcast(ones, 1)

	for s0 := 0; s0 < starts; s0 += blockStarts {
		w := min(blockStarts, starts-s0)
		cnt, txt, eq, one := counts[:w], text[:w], want[:w], ones[:w]
		k.Broadcast(cnt, 0)

		for i := 0; i < m; i++ {
			k.LoadBytes(txt, haystack[s0+i:s0+i+w])
			k.Broadcast(eq, T(needle[i]))
			k.CmpEq(eq, txt, eq)
			k.AndNot(eq, one, eq)
			k.AddSat(cnt, cnt, eq)
			if k.ReduceMin(cnt) > limit {
				break
			}
		}

		for s, c := range cnt {
			if c > limit {
				continue
			}
			if !yield(search.Match{Start: s0 + s, End: s0 + s + m, K: int(c)}) {
				return
			}
		}
	}
}
