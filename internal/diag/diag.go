// Package diag is the banded anti-diagonal DP shared by the Levenshtein and
// restricted Damerau-Levenshtein engines.
//
// Lane i of diagonal d holds D[i][d-i], row i being the prefix a[:i]. Cells on
// one anti-diagonal depend only on earlier diagonals, so a whole diagonal is
// computed with a handful of vector operations. b is widened once, reversed;
// the bytes facing the lanes of diagonal d are then a plain sub-slice.
package diag

import (
	"github.com/coregx/editdist/internal/conv"
	"github.com/coregx/editdist/vec"
)

// Distance returns the edit distance between a and b if it is at most bound,
// and false otherwise. With transpositions it computes the restricted
// (optimal string alignment) distance.
//
// Only the band |i-j| <= bound is computed; cells just outside it hold the
// sentinel bound+1, which must fit in T.
func Distance[T vec.Lanes](k vec.Kernel[T], a, b []byte, bound int, transpositions bool) (int, bool) {
	n, m := len(a), len(b)
	if bound < 0 || abs(n-m) > bound {
		return 0, false
	}
	if n == 0 || m == 0 {
		return max(n, m), true
	}
	return newGrid(k, a, b, bound, transpositions).run()
}

type grid[T vec.Lanes] struct {
	k      vec.Kernel[T]
	n, m   int
	bound  int
	sent   T
	trans  bool
	lanes  int
	rev    []T // rev[n+1+t] = b[m-1-t], zero padded on both sides
	a      []T // a[i] = a[i-1]
	ones   []T
	sents  []T
	ring   [][]T
	mins   []T // band minimum of the newest diagonals, slot d%len
	t1, t2 []T
	t3, t4 []T
}

func newGrid[T vec.Lanes](k vec.Kernel[T], a, b []byte, bound int, trans bool) *grid[T] {
	n, m := len(a), len(b)
	lanes := n + 2
	alloc := func(l int) []T { return vec.Alloc(k, l)[:l] }

	g := &grid[T]{
		k: k, n: n, m: m, bound: bound,
		sent:  conv.ToLane[T](bound + 1),
		trans: trans,
		lanes: lanes,
	}
	g.rev = alloc(2*(n+1) + m)
	k.LoadBytesReversed(g.rev[n+1:n+1+m], b)
	g.a = alloc(lanes)
	k.LoadBytes(g.a[1:], a)
	g.ones, g.sents = alloc(lanes), alloc(lanes)
	k.Broadcast(g.ones, 1)
	k.Broadcast(g.sents, g.sent)
	g.t1, g.t2 = alloc(lanes), alloc(lanes)

	slots, window := 3, 2
	if trans {
		// A transposition reaches back to diagonal d-4 and a path can
		// skip three diagonals.
		slots, window = 5, 4
		g.t3, g.t4 = alloc(lanes), alloc(lanes)
	}
	g.ring = make([][]T, slots)
	for i := range g.ring {
		g.ring[i] = alloc(lanes)
		k.Broadcast(g.ring[i], g.sent)
	}
	g.mins = make([]T, window)
	for i := range g.mins {
		g.mins[i] = g.sent
	}
	return g
}

// chars returns the b bytes facing lanes 0..lanes-1 on diagonal d:
// lane i faces b[d-i-1].
func (g *grid[T]) chars(d int) []T {
	start := g.n + 1 + g.m - d
	return g.rev[start : start+g.lanes]
}

func (g *grid[T]) slot(d int) []T {
	return g.ring[d%len(g.ring)]
}

// edge returns the value of boundary or out-of-range lane i on diagonal d.
func (g *grid[T]) edge(i, d int) T {
	if d <= g.bound && ((i == 0 && d <= g.m) || (i == d && d <= g.n)) {
		return T(d)
	}
	return g.sent
}

func (g *grid[T]) run() (int, bool) {
	k, n, m, bound := g.k, g.n, g.m, g.bound

	for d := 0; d <= n+m; d++ {
		lo := max(1, d-m, ceilHalf(d-bound))
		hi := min(n, d-1, (d+bound)/2)
		cur := g.slot(d)

		if lo <= hi {
			g.step(d, lo, hi, cur)
		}
		// The lanes bordering the band are boundary cells or sentinels.
		cur[lo-1] = g.edge(lo-1, d)
		cur[hi+1] = g.edge(hi+1, d)

		g.mins[d%len(g.mins)] = k.ReduceMin(cur[lo-1 : hi+2])
		if slicesMin(g.mins) > T(bound) {
			return 0, false
		}
	}

	if v := g.slot(n + m)[n]; int(v) <= bound {
		return int(v), true
	}
	return 0, false
}

// step computes lanes [lo, hi] of diagonal d into cur.
func (g *grid[T]) step(d, lo, hi int, cur []T) {
	k := g.k
	w := hi - lo + 1
	prev1, prev2 := g.slot(d-1), g.slot(d-2)
	t1, t2 := g.t1[:w], g.t2[:w]
	chars := g.chars(d)

	// Substitution or match from D[i-1][j-1].
	k.CmpEq(t1, g.a[lo:hi+1], chars[lo:hi+1])
	k.AndNot(t1, g.ones[:w], t1)
	k.AddSat(t1, t1, prev2[lo-1:hi])

	// Deletion from D[i-1][j], insertion from D[i][j-1].
	k.AddSat(t2, prev1[lo-1:hi], g.ones[:w])
	k.Min(t1, t1, t2)
	k.AddSat(t2, prev1[lo:hi+1], g.ones[:w])
	k.Min(t1, t1, t2)

	if g.trans {
		g.transpose(d, lo, hi, t1)
	}
	k.Min(cur[lo:hi+1], t1, g.sents[:w])
}

// transpose folds D[i-2][j-2]+1 into acc for lanes where a[i-2:i] and
// b[j-2:j] are swapped pairs.
func (g *grid[T]) transpose(d, lo, hi int, acc []T) {
	tlo, thi := max(lo, 2), min(hi, d-2)
	if tlo > thi {
		return
	}
	k := g.k
	w := thi - tlo + 1
	off := tlo - lo
	mask, cand := g.t3[:w], g.t4[:w]
	prevChars, chars := g.chars(d-1), g.chars(d)
	prev4 := g.slot(d - 4)

	// a[i-1] == b[j-2] and a[i-2] == b[j-1].
	k.CmpEq(mask, g.a[tlo:thi+1], prevChars[tlo:thi+1])
	k.CmpEq(cand, g.a[tlo-1:thi], chars[tlo:thi+1])
	k.And(mask, mask, cand)

	k.AddSat(cand, prev4[tlo-2:thi-1], g.ones[:w])
	k.Blend(cand, mask, g.sents[:w], cand)
	k.Min(acc[off:off+w], acc[off:off+w], cand)
}

func ceilHalf(x int) int {
	if x <= 0 {
		return x / 2
	}
	return (x + 1) / 2
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func slicesMin[T vec.Lanes](s []T) T {
	m := s[0]
	for _, v := range s[1:] {
		m = min(m, v)
	}
	return m
}
