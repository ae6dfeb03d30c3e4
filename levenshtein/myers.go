package levenshtein

const wordBits = 64

// myers is Myers' bit-vector algorithm extended to patterns of any length by
// splitting the pattern into 64-bit blocks (Hyyrö 2003). Each block keeps the
// vertical deltas of its 64 rows and passes its bottom horizontal delta to the
// next block as a carry.
//
// It returns the distance if it is at most bound, and false otherwise.
func myers(a, b []byte, bound int) (int, bool) {
	pattern, text := a, b
	if len(pattern) > len(text) {
		pattern, text = text, pattern
	}
	n, m := len(pattern), len(text)
	if bound < 0 || m-n > bound {
		return 0, false
	}
	if n == 0 {
		return m, true
	}

	blocks := (n + wordBits - 1) / wordBits
	peq := make([]uint64, 256*blocks)
	for i, c := range pattern {
		peq[int(c)*blocks+i/wordBits] |= 1 << (i % wordBits)
	}

	pv := make([]uint64, blocks)
	mv := make([]uint64, blocks)
	for i := range pv {
		pv[i] = ^uint64(0)
	}

	last := blocks - 1
	lastBit := uint((n - 1) % wordBits)
	score := n

	for j, c := range text {
		eq := peq[int(c)*blocks : int(c)*blocks+blocks]
		// Row 0 is D[0][j] = j: the carry into the first block is +1.
		hp, hm := uint64(1), uint64(0)
		for blk := 0; blk < last; blk++ {
			hp, hm = advanceBlock(&pv[blk], &mv[blk], eq[blk], hp, hm, wordBits-1)
		}
		hp, hm = advanceBlock(&pv[last], &mv[last], eq[last], hp, hm, lastBit)
		score += int(hp) - int(hm)

		if score-(m-j-1) > bound {
			return 0, false
		}
	}
	if score > bound {
		return 0, false
	}
	return score, true
}

// advanceBlock moves one block by one text column. hinP/hinM (0 or 1) are
// the +1/-1 horizontal delta entering the block's top row; the result is the
// delta leaving row outBit. No step depends on the data through a branch.
func advanceBlock(pv, mv *uint64, eq, hinP, hinM uint64, outBit uint) (uint64, uint64) {
	p, m := *pv, *mv
	xv := eq | m
	eq |= hinM
	xh := (((eq & p) + p) ^ p) | eq

	ph := m | ^(xh | p)
	mh := p & xh

	outP := (ph >> outBit) & 1
	outM := (mh >> outBit) & 1

	ph = ph<<1 | hinP
	mh = mh<<1 | hinM

	*pv = mh | ^(xv | ph)
	*mv = ph & xv
	return outP, outM
}
