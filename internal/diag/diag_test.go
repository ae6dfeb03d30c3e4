package diag

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coregx/editdist/internal/naive"
	"github.com/coregx/editdist/vec"
)

func randBytes(r *rand.Rand, n int, alphabet string) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.IntN(len(alphabet))]
	}
	return b
}

// mutate applies a few random edits so pairs sit near each other.
func mutate(r *rand.Rand, s []byte, edits int, alphabet string) []byte {
	out := append([]byte(nil), s...)
	for range edits {
		c := alphabet[r.IntN(len(alphabet))]
		switch op := r.IntN(4); {
		case op == 0 || len(out) == 0:
			p := r.IntN(len(out) + 1)
			out = append(out[:p], append([]byte{c}, out[p:]...)...)
		case op == 1:
			p := r.IntN(len(out))
			out = append(out[:p], out[p+1:]...)
		case op == 2:
			out[r.IntN(len(out))] = c
		default:
			if len(out) > 1 {
				p := r.IntN(len(out) - 1)
				out[p], out[p+1] = out[p+1], out[p]
			}
		}
	}
	return out
}

func check[T vec.Lanes](t *testing.T, b vec.Backend, trans bool) {
	t.Helper()
	ref := naive.Levenshtein
	if trans {
		ref = naive.Damerau
	}
	k := vec.KernelFor[T](b)
	r := rand.New(rand.NewPCG(uint64(b)+7, 99))
	for i := range 600 {
		a := randBytes(r, r.IntN(40), "abcd")
		bb := mutate(r, a, r.IntN(8), "abcd")
		if i%5 == 0 {
			bb = randBytes(r, r.IntN(40), "abcd")
		}
		want := ref(a, bb)

		for _, bound := range []int{0, 1, 2, 5, 50} {
			got, ok := Distance(k, a, bb, bound, trans)
			if want <= bound {
				require.True(t, ok, "a=%q b=%q bound=%d want %d", a, bb, bound, want)
				require.Equal(t, want, got, "a=%q b=%q bound=%d", a, bb, bound)
			} else {
				require.False(t, ok, "a=%q b=%q bound=%d got %d want %d", a, bb, bound, got, want)
			}
		}
	}
}

func TestDistanceMatchesNaive(t *testing.T) {
	for _, b := range vec.Available() {
		t.Run(b.String()+"/lev/u8", func(t *testing.T) { check[uint8](t, b, false) })
		t.Run(b.String()+"/lev/u16", func(t *testing.T) { check[uint16](t, b, false) })
		t.Run(b.String()+"/lev/u32", func(t *testing.T) { check[uint32](t, b, false) })
		t.Run(b.String()+"/osa/u8", func(t *testing.T) { check[uint8](t, b, true) })
		t.Run(b.String()+"/osa/u32", func(t *testing.T) { check[uint32](t, b, true) })
	}
}

func TestDistanceKnown(t *testing.T) {
	k := vec.KernelFor[uint8](vec.Resolve())
	tests := []struct {
		a, b  string
		trans bool
		want  int
	}{
		{"kitten", "sitting", false, 3},
		{"", "abc", false, 3},
		{"abc", "", true, 3},
		{"ab", "ba", false, 2},
		{"ab", "ba", true, 1},
		{"abc", "cab", true, 2},
		{"ca", "abc", true, 3},
		{"abcdef", "badcfe", true, 3},
	}
	for _, tt := range tests {
		got, ok := Distance(k, []byte(tt.a), []byte(tt.b), 10, tt.trans)
		require.True(t, ok)
		require.Equal(t, tt.want, got, "%q vs %q trans=%v", tt.a, tt.b, tt.trans)
	}
}

func TestDistanceLengthGap(t *testing.T) {
	k := vec.KernelFor[uint8](vec.Resolve())
	_, ok := Distance(k, []byte("a"), []byte("abcdef"), 4, false)
	require.False(t, ok)
	_, ok = Distance(k, []byte("a"), []byte("a"), -1, false)
	require.False(t, ok)
}
