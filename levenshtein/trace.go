package levenshtein

import (
	"fmt"
	"slices"
)

// Edit is one step of an alignment of a against b.
type Edit uint8

const (
	// Match pairs equal bytes a[i] and b[j].
	Match Edit = iota

	// Mismatch pairs a[i] with a different byte b[j] (a substitution).
	Mismatch

	// AGap is a gap in a: b[j] is inserted.
	AGap

	// BGap is a gap in b: a[i] is deleted.
	BGap
)

func (e Edit) String() string {
	switch e {
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	case AGap:
		return "agap"
	case BGap:
		return "bgap"
	default:
		return fmt.Sprintf("Edit(%d)", uint8(e))
	}
}

// Trace returns the Levenshtein distance together with an optimal alignment:
// a sequence of edits turning a into b whose non-Match steps number exactly
// the distance. It keeps the full (len(a)+1) x (len(b)+1) matrix, so it is
// meant for short inputs.
func (e *Engine) Trace(a, b []byte) (int, []Edit) {
	n, m := len(a), len(b)
	w := m + 1
	d := make([]uint32, (n+1)*w)
	for j := 0; j <= m; j++ {
		d[j] = uint32(j)
	}
	for i := 1; i <= n; i++ {
		row, prev := d[i*w:(i+1)*w], d[(i-1)*w:i*w]
		row[0] = uint32(i)
		for j := 1; j <= m; j++ {
			sub := prev[j-1]
			if a[i-1] != b[j-1] {
				sub++
			}
			row[j] = min(sub, prev[j]+1, row[j-1]+1)
		}
	}

	edits := make([]Edit, 0, max(n, m))
	i, j := n, m
	for i > 0 || j > 0 {
		cur := d[i*w+j]
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1] && cur == d[(i-1)*w+j-1]:
			edits = append(edits, Match)
			i, j = i-1, j-1
		case i > 0 && j > 0 && cur == d[(i-1)*w+j-1]+1:
			edits = append(edits, Mismatch)
			i, j = i-1, j-1
		case i > 0 && cur == d[(i-1)*w+j]+1:
			edits = append(edits, BGap)
			i--
		default:
			edits = append(edits, AGap)
			j--
		}
	}
	slices.Reverse(edits)
	return int(d[n*w+m]), edits
}
