package search

import (
	"github.com/coregx/editdist/internal/conv"
	"github.com/coregx/editdist/vec"
)

// scanner is the streaming anti-diagonal DP. Lane i holds row i of the
// matrix (pattern prefix length i); diagonal d holds cells D[i][d-i]. Row 0 is
// zero on every diagonal, which lets an alignment start anywhere in the text.
//
// Next to each cost it carries the number of text bytes the best alignment
// into that cell consumed, so a reported end also knows its start.
type scanner[T vec.Lanes] struct {
	k     vec.Kernel[T]
	m     int
	bound T

	pat  []T // pat[i] = pattern[i-1]
	text []T // text[i] = text byte facing row i on the current diagonal
	ones []T
	sent []T

	cost [3][]T // ring of the three newest diagonals, slot d%3
	span [3][]T

	c1, c2, c3 []T
	l1, l2, l3 []T
	mask       []T
}

func newScanner[T vec.Lanes](k vec.Kernel[T], pattern []byte, bound int) *scanner[T] {
	m := len(pattern)
	lanes := m + 1
	alloc := func() []T { return vec.Alloc(k, lanes)[:lanes] }

	s := &scanner[T]{k: k, m: m, bound: conv.ToLane[T](bound)}
	s.pat, s.text, s.ones, s.sent = alloc(), alloc(), alloc(), alloc()
	for i := range s.cost {
		s.cost[i], s.span[i] = alloc(), alloc()
	}
	s.c1, s.c2, s.c3 = alloc(), alloc(), alloc()
	s.l1, s.l2, s.l3 = alloc(), alloc(), alloc()
	s.mask = alloc()

	k.LoadBytes(s.pat[1:], pattern)
	k.Broadcast(s.ones, 1)
	k.Broadcast(s.sent, conv.ToLane[T](bound+1))
	return s
}

// run scans text, whose first byte sits at absolute offset base, and yields
// every match whose end lies in [lo, hi]. It returns false if yield stopped.
func (s *scanner[T]) run(text []byte, base, lo, hi int, yield func(Match) bool) bool {
	k, m := s.k, s.m
	sentinel := s.sent[0]

	for i := range s.cost {
		k.Broadcast(s.cost[i], sentinel)
		k.Broadcast(s.span[i], 0)
	}
	k.Broadcast(s.text, 0)

	n := len(text)
	for d := 0; d <= n+m; d++ {
		cur, p1, p2 := s.cost[d%3], s.cost[(d+2)%3], s.cost[(d+1)%3]
		curL, p1L, p2L := s.span[d%3], s.span[(d+2)%3], s.span[(d+1)%3]

		var fill T
		if d >= 1 && d <= n {
			fill = T(text[d-1])
		}
		k.ShiftUp(s.text, s.text, fill)

		// Substitution from D[i-1][j-1]: cost 0 on a byte match.
		k.CmpEq(s.mask, s.pat, s.text)
		k.AndNot(s.mask, s.ones, s.mask)
		k.ShiftUp(s.c1, p2, sentinel)
		k.AddSat(s.c1, s.c1, s.mask)
		k.ShiftUp(s.l1, p2L, 0)
		k.AddSat(s.l1, s.l1, s.ones)

		// Pattern byte skipped, from D[i-1][j].
		k.ShiftUp(s.c2, p1, sentinel)
		k.AddSat(s.c2, s.c2, s.ones)
		k.ShiftUp(s.l2, p1L, 0)

		// Text byte skipped, from D[i][j-1].
		k.AddSat(s.c3, p1, s.ones)
		k.AddSat(s.l3, p1L, s.ones)

		k.Min(cur, s.c1, s.c2)
		k.Min(cur, cur, s.c3)

		// Longest span among the candidates reaching the minimum.
		k.CmpEq(s.mask, s.c1, cur)
		k.And(curL, s.l1, s.mask)
		k.CmpEq(s.mask, s.c2, cur)
		k.And(s.mask, s.l2, s.mask)
		k.Max(curL, curL, s.mask)
		k.CmpEq(s.mask, s.c3, cur)
		k.And(s.mask, s.l3, s.mask)
		k.Max(curL, curL, s.mask)

		k.Min(cur, cur, s.sent)
		cur[0], curL[0] = 0, 0

		j := d - m
		if j < 0 {
			continue
		}
		end := base + j
		if end < lo || end > hi || cur[m] > s.bound {
			continue
		}
		if !yield(Match{Start: end - int(curL[m]), End: end, K: int(cur[m])}) {
			return false
		}
	}
	return true
}
