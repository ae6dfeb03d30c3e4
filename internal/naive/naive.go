// Package naive holds textbook O(n·m) dynamic programs. Tests in every
// package cross-check the vectorised engines against them.
package naive

// Hamming counts mismatching positions. It returns -1 if the lengths differ.
func Hamming(a, b []byte) int {
	if len(a) != len(b) {
		return -1
	}
	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

// Levenshtein is the Wagner-Fischer distance with two rows.
func Levenshtein(a, b []byte) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j-1]+cost, prev[j]+1, cur[j-1]+1)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// Damerau is the restricted (optimal string alignment) distance.
func Damerau(a, b []byte) int {
	n, m := len(a), len(b)
	d := make([][]int, n+1)
	for i := range d {
		d[i] = make([]int, m+1)
		d[i][0] = i
	}
	for j := 0; j <= m; j++ {
		d[0][j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			d[i][j] = min(d[i-1][j-1]+cost, d[i-1][j]+1, d[i][j-1]+1)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				d[i][j] = min(d[i][j], d[i-2][j-2]+1)
			}
		}
	}
	return d[n][m]
}

// Match is one end position reported by Search.
type Match struct {
	Start, End, K int
}

// Search reports every end offset in text where pattern matches with at most
// k edits. Start is the start of the longest alignment achieving that cost.
func Search(pattern, text []byte, k int) []Match {
	m := len(pattern)
	type cell struct{ cost, length int }
	prev := make([]cell, m+1)
	cur := make([]cell, m+1)
	for i := range prev {
		prev[i] = cell{i, 0}
	}
	var out []Match
	emit := func(end int, c cell) {
		if c.cost <= k {
			out = append(out, Match{Start: end - c.length, End: end, K: c.cost})
		}
	}
	emit(0, prev[m])
	better := func(x, y cell) cell {
		if x.cost < y.cost || (x.cost == y.cost && x.length > y.length) {
			return x
		}
		return y
	}
	for j := 1; j <= len(text); j++ {
		cur[0] = cell{0, 0}
		for i := 1; i <= m; i++ {
			cost := 1
			if pattern[i-1] == text[j-1] {
				cost = 0
			}
			c := cell{prev[i-1].cost + cost, prev[i-1].length + 1}
			c = better(c, cell{prev[i].cost + 1, prev[i].length + 1})
			c = better(c, cell{cur[i-1].cost + 1, cur[i-1].length})
			cur[i] = c
		}
		emit(j, cur[m])
		prev, cur = cur, prev
	}
	return out
}

// HammingSearch reports every offset where needle aligns with at most k mismatches.
func HammingSearch(needle, haystack []byte, k int) []Match {
	var out []Match
	for s := 0; s+len(needle) <= len(haystack); s++ {
		if d := Hamming(needle, haystack[s:s+len(needle)]); d <= k {
			out = append(out, Match{Start: s, End: s + len(needle), K: d})
		}
	}
	return out
}
