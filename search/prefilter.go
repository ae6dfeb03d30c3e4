package search

import (
	"bytes"

	"github.com/coregx/ahocorasick"
)

// piece is one pigeonhole fragment of the pattern.
type piece struct {
	offset int
	lit    []byte
}

// window is an inclusive range of candidate end offsets.
type window struct {
	lo, hi int
}

// splitPieces cuts pattern into n contiguous pieces whose lengths differ by at
// most one.
func splitPieces(pattern []byte, n int) []piece {
	m := len(pattern)
	out := make([]piece, 0, n)
	off := 0
	for i := range n {
		size := m / n
		if i < m%n {
			size++
		}
		out = append(out, piece{offset: off, lit: pattern[off : off+size]})
		off += size
	}
	return out
}

// buildPieceAutomaton compiles the distinct piece literals.
func buildPieceAutomaton(pieces []piece) (*ahocorasick.Automaton, error) {
	builder := ahocorasick.NewBuilder()
	seen := make(map[string]struct{}, len(pieces))
	for _, p := range pieces {
		if _, dup := seen[string(p.lit)]; dup {
			continue
		}
		seen[string(p.lit)] = struct{}{}
		builder.AddPattern(p.lit)
	}
	return builder.Build()
}

// prefiltered runs the DP only around verbatim piece occurrences.
//
// With at most k edits, one of k+1 disjoint pieces survives untouched. A
// piece at pattern offset o found at text position p puts the match end in
// [p-o+m-k, p-o+m+k]. Candidate ranges are merged as they stream in and each
// merged range is scanned once it can no longer grow.
func (s *Searcher) prefiltered(pattern, text []byte, k int, yield func(Match) bool) {
	m, n := len(pattern), len(text)
	pieces := splitPieces(pattern, k+1)
	run := s.runner(pattern, k)
	auto, err := buildPieceAutomaton(pieces)
	if err != nil {
		run(text, 0, 0, n, yield)
		return
	}
	maxOffset := pieces[len(pieces)-1].offset

	var pending []window
	flush := func(before int) bool {
		for len(pending) > 0 && pending[0].hi+1 < before {
			w := pending[0]
			pending = pending[1:]
			if !scanRange(run, m, k, text, w.lo, w.hi, yield) {
				return false
			}
		}
		return true
	}

	next := 0 // first text position not yet checked for pieces
	for next < n {
		hit := auto.Find(text, next)
		if hit == nil {
			break
		}
		// Piece lengths differ by at most one, so an automaton reporting the
		// earliest end hides at most a piece starting one byte earlier.
		from := max(next, hit.Start-1)
		next = hit.Start + 1

		// No later window starts before this.
		if !flush(from - maxOffset + m - k) {
			return
		}
		for p := from; p < next; p++ {
			for _, pc := range pieces {
				if !bytes.HasPrefix(text[p:], pc.lit) {
					continue
				}
				lo := max(0, p-pc.offset+m-k)
				hi := min(n, p-pc.offset+m+k)
				if lo <= hi {
					pending = insertWindow(pending, window{lo, hi})
				}
			}
		}
	}
	flush(n + 2)
}

// insertWindow adds w to the sorted, disjoint list ws, merging ranges that
// overlap or touch.
func insertWindow(ws []window, w window) []window {
	i := 0
	for i < len(ws) && ws[i].hi+1 < w.lo {
		i++
	}
	j := i
	for j < len(ws) && ws[j].lo <= w.hi+1 {
		w.lo = min(w.lo, ws[j].lo)
		w.hi = max(w.hi, ws[j].hi)
		j++
	}
	out := append(ws[:i:i], w)
	return append(out, ws[j:]...)
}
