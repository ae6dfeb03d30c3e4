package search

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/editdist/internal/naive"
	"github.com/coregx/editdist/vec"
)

func toNaive(ms []Match) []naive.Match {
	out := make([]naive.Match, len(ms))
	for i, m := range ms {
		out[i] = naive.Match{Start: m.Start, End: m.End, K: m.K}
	}
	return out
}

func randBytes(r *rand.Rand, n int, alphabet string) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.IntN(len(alphabet))]
	}
	return b
}

func TestSearchExample(t *testing.T) {
	got := slices.Collect(Search([]byte("abc"), []byte("xxabdxx"), 1))
	require.NotEmpty(t, got)

	var sawABD bool
	for _, m := range got {
		assert.NotZero(t, m.K, "no exact occurrence of abc exists")
		if m.End == 5 {
			sawABD = true
			assert.Equal(t, Match{Start: 2, End: 5, K: 1}, m)
		}
	}
	assert.True(t, sawABD, "expected a match ending after \"abd\": %v", got)
}

func TestSearchEdgeCases(t *testing.T) {
	tests := []struct {
		name          string
		pattern, text string
		k             int
		want          []Match
	}{
		{"empty_text", "ab", "", 2, []Match{{0, 0, 2}}},
		{"empty_text_tight", "ab", "", 1, nil},
		{"empty_pattern", "", "ab", 0, []Match{{0, 0, 0}, {1, 1, 0}, {2, 2, 0}}},
		{"exact", "ab", "xabx", 0, []Match{{1, 3, 0}}},
		{"overlapping_exact", "aa", "aaa", 0, []Match{{0, 2, 0}, {1, 3, 0}}},
		{"pattern_longer", "abcd", "bc", 2, []Match{{0, 2, 2}}},
		{"negative_k", "ab", "ab", -1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Search([]byte(tt.pattern), []byte(tt.text), tt.k))
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestSearchMatchesNaive cross-checks every path against the textbook DP.
func TestSearchMatchesNaive(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	configs := []struct {
		name string
		opts Options
	}{
		{"scan", Options{Backend: vec.Scalar}},
		{"prefilter", Options{Backend: vec.Resolve(), Prefilter: true, MinPieceLen: 1}},
		{"prefilter_default", Options{Backend: vec.Resolve(), Prefilter: true, MinPieceLen: DefaultMinPieceLen}},
	}
	for _, cfg := range configs {
		t.Run(cfg.name, func(t *testing.T) {
			s := New(cfg.opts)
			for iter := range 400 {
				m := r.IntN(24)
				pattern := randBytes(r, m, "acgt")
				text := randBytes(r, r.IntN(120), "acgt")
				if m > 0 && len(text) > m && r.IntN(2) == 0 {
					pos := r.IntN(len(text) - m)
					copy(text[pos:], pattern)
				}
				k := []int{0, 1, 2, 3, 5, 8}[r.IntN(6)]

				want := naive.Search(pattern, text, k)
				got := toNaive(slices.Collect(s.Search(pattern, text, k)))
				if len(want) == 0 {
					want = nil
				}
				if len(got) == 0 {
					got = nil
				}
				require.Equal(t, want, got, "iter %d: pattern=%q text=%q k=%d", iter, pattern, text, k)
			}
		})
	}
}

func TestPrefilterEqualsScan(t *testing.T) {
	r := rand.New(rand.NewPCG(21, 22))
	filtered := New(Options{Backend: vec.Resolve(), Prefilter: true, MinPieceLen: 2})
	plain := New(Options{Backend: vec.Resolve()})

	for range 100 {
		pattern := randBytes(r, 8+r.IntN(24), "abcdefgh")
		text := randBytes(r, 500+r.IntN(1500), "abcdefgh")
		for i := 0; i < 5; i++ {
			pos := r.IntN(len(text) - len(pattern))
			copy(text[pos:], pattern)
			text[pos+r.IntN(len(pattern))] = 'z'
		}
		k := 1 + r.IntN(3)

		want := slices.Collect(plain.Scan(pattern, text, k))
		got := slices.Collect(filtered.Search(pattern, text, k))
		require.Equal(t, want, got, "pattern=%q k=%d", pattern, k)
	}
}

func TestExactEqualsScan(t *testing.T) {
	r := rand.New(rand.NewPCG(31, 32))
	s := New(DefaultOptions())
	for range 200 {
		pattern := randBytes(r, 1+r.IntN(4), "ab")
		text := randBytes(r, r.IntN(64), "ab")
		want := slices.Collect(s.Scan(pattern, text, 0))
		got := slices.Collect(s.Search(pattern, text, 0))
		require.Equal(t, want, got, "pattern=%q text=%q", pattern, text)
	}
}

func TestSearchBackendsAgree(t *testing.T) {
	pattern := []byte("needle in a haystack")
	text := []byte("a needle in the haystack, a nedle in a haystak, and a needle in a haystack")
	var ref []Match
	for i, b := range vec.Available() {
		got := slices.Collect(New(Options{Backend: b}).Search(pattern, text, 4))
		if i == 0 {
			ref = got
			require.NotEmpty(t, ref)
			continue
		}
		assert.Equal(t, ref, got, "backend %s", b)
	}
}

// TestSearchLaneWidths runs patterns long enough to need 16-bit lanes.
func TestSearchLaneWidths(t *testing.T) {
	r := rand.New(rand.NewPCG(41, 42))
	for _, m := range []int{200, 300} {
		t.Run(fmt.Sprintf("m=%d", m), func(t *testing.T) {
			pattern := randBytes(r, m, "ab")
			text := randBytes(r, 2*m, "ab")
			copy(text[m/2:], pattern)
			text[m/2+7] ^= 3
			k := 60

			want := naive.Search(pattern, text, k)
			got := toNaive(slices.Collect(New(Options{Backend: vec.Resolve()}).Search(pattern, text, k)))
			require.Equal(t, want, got)
		})
	}
}

func TestSearchStopsEarly(t *testing.T) {
	n := 0
	for range Search([]byte("ab"), []byte("abababababab"), 1) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestCollect(t *testing.T) {
	s := New(DefaultOptions())
	_, err := s.Collect([]byte("a"), []byte("a"), -1)
	require.ErrorIs(t, err, ErrNegativeBound)

	got, err := s.Collect([]byte("cat"), []byte("the cart"), 1)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, m := range got {
		assert.LessOrEqual(t, m.K, 1)
	}
}

func TestSplitPieces(t *testing.T) {
	pieces := splitPieces([]byte("abcdefg"), 3)
	require.Len(t, pieces, 3)
	assert.Equal(t, piece{0, []byte("abc")}, pieces[0])
	assert.Equal(t, piece{3, []byte("de")}, pieces[1])
	assert.Equal(t, piece{5, []byte("fg")}, pieces[2])
}

func TestInsertWindow(t *testing.T) {
	var ws []window
	ws = insertWindow(ws, window{10, 20})
	ws = insertWindow(ws, window{30, 40})
	ws = insertWindow(ws, window{0, 2})
	assert.Equal(t, []window{{0, 2}, {10, 20}, {30, 40}}, ws)

	ws = insertWindow(ws, window{21, 29})
	assert.Equal(t, []window{{0, 2}, {10, 40}}, ws)

	ws = insertWindow(ws, window{1, 12})
	assert.Equal(t, []window{{0, 40}}, ws)
}

func BenchmarkSearch(b *testing.B) {
	r := rand.New(rand.NewPCG(51, 52))
	text := randBytes(r, 1<<16, "acgt")
	pattern := randBytes(r, 32, "acgt")
	for _, cfg := range []struct {
		name string
		opts Options
	}{
		{"scan", Options{Backend: vec.Resolve()}},
		{"prefilter", DefaultOptions()},
	} {
		b.Run(cfg.name, func(b *testing.B) {
			s := New(cfg.opts)
			b.SetBytes(int64(len(text)))
			for b.Loop() {
				for range s.Search(pattern, text, 2) {
				}
			}
		})
	}
}
