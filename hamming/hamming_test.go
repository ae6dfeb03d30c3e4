package hamming

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/editdist/internal/naive"
	"github.com/coregx/editdist/search"
	"github.com/coregx/editdist/vec"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"karolin", "kathrin", 3},
		{"0000", "1111", 4},
	}
	for _, b := range vec.Available() {
		e := New(b)
		for _, tt := range tests {
			got, err := e.Distance([]byte(tt.a), []byte(tt.b))
			if err != nil {
				t.Fatalf("%s: Distance(%q, %q) error: %v", b, tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("%s: Distance(%q, %q) = %d, want %d", b, tt.a, tt.b, got, tt.want)
			}
		}
	}
}

func TestDistanceLong(t *testing.T) {
	r := rand.New(rand.NewPCG(21, 22))
	a := make([]byte, 3*chunk+17)
	for i := range a {
		a[i] = byte(r.IntN(256))
	}
	bb := slices.Clone(a)
	for i := 0; i < len(bb); i += 7 {
		bb[i] ^= 0x80
	}
	for _, b := range vec.Available() {
		got, err := New(b).Distance(a, bb)
		require.NoError(t, err)
		assert.Equal(t, naive.Hamming(a, bb), got, b.String())
	}
}

func TestDistanceLengthMismatch(t *testing.T) {
	_, err := Distance([]byte("abc"), []byte("ab"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	var lm *LengthMismatchError
	require.True(t, errors.As(err, &lm))
	assert.Equal(t, 3, lm.LenA)
	assert.Equal(t, 2, lm.LenB)
	assert.Contains(t, err.Error(), "3 != 2")
}

func TestSearch(t *testing.T) {
	got := slices.Collect(Search([]byte("ab"), []byte("abxbab"), 1))
	want := []search.Match{{Start: 0, End: 2, K: 0}, {Start: 2, End: 4, K: 1}, {Start: 4, End: 6, K: 0}}
	assert.Equal(t, want, got)

	assert.Empty(t, slices.Collect(Search([]byte("abc"), []byte("ab"), 3)))
	assert.Empty(t, slices.Collect(Search([]byte("ab"), []byte("abab"), -1)))
}

func TestSearchMatchesNaive(t *testing.T) {
	r := rand.New(rand.NewPCG(23, 24))
	for _, b := range vec.Available() {
		e := New(b)
		t.Run(b.String(), func(t *testing.T) {
			for range 200 {
				hay := make([]byte, r.IntN(700))
				for i := range hay {
					hay[i] = "ab"[r.IntN(2)]
				}
				needle := make([]byte, 1+r.IntN(12))
				for i := range needle {
					needle[i] = "ab"[r.IntN(2)]
				}
				k := r.IntN(len(needle) + 2)

				var want []search.Match
				for _, m := range naive.HammingSearch(needle, hay, k) {
					want = append(want, search.Match{Start: m.Start, End: m.End, K: m.K})
				}
				got := slices.Collect(e.Search(needle, hay, k))
				require.Equal(t, want, got, "needle=%q k=%d", needle, k)
			}
		})
	}
}

func TestSearchWideBound(t *testing.T) {
	// A needle longer than 254 bytes with k above it needs 16-bit lanes.
	needle := []byte(strings.Repeat("ab", 200))
	hay := []byte(strings.Repeat("ba", 250))
	for m := range Search(needle, hay, 1000) {
		assert.Equal(t, len(needle), m.End-m.Start)
		if m.Start%2 == 0 {
			assert.Equal(t, 400, m.K)
		} else {
			assert.Equal(t, 0, m.K)
		}
	}
}

func TestSearchStops(t *testing.T) {
	n := 0
	for range Search([]byte("a"), []byte(strings.Repeat("a", 1000)), 0) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func BenchmarkSearch(b *testing.B) {
	r := rand.New(rand.NewPCG(25, 26))
	hay := make([]byte, 1<<16)
	for i := range hay {
		hay[i] = "acgt"[r.IntN(4)]
	}
	needle := hay[1000:1032]
	b.SetBytes(int64(len(hay)))
	for b.Loop() {
		for range Search(needle, hay, 3) {
		}
	}
}
