package simd

import (
	"bytes"
	"iter"
)

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack. It is equivalent to bytes.Index.
//
// Algorithm:
//  1. Pick the two rarest bytes of needle from ByteFrequencies
//  2. Use MemchrPair to find positions where both occur at the right distance
//  3. Verify the full needle at each candidate
//
// Example:
//
//	pos := simd.Memmem([]byte("aaaaaabaaaa"), []byte("aab"))
//	// pos == 4
func Memmem(haystack, needle []byte) int {
	return MemmemAt(haystack, needle, 0)
}

// MemmemAt is Memmem starting the search at offset at. The returned index is
// relative to the start of haystack.
func MemmemAt(haystack, needle []byte, at int) int {
	needleLen := len(needle)
	if at < 0 || at > len(haystack) {
		return -1
	}
	if needleLen == 0 {
		return at
	}
	if len(haystack)-at < needleLen {
		return -1
	}
	if needleLen == 1 {
		if i := Memchr(haystack[at:], needle[0]); i >= 0 {
			return at + i
		}
		return -1
	}
	return memmemRare(haystack, needle, at, SelectRareBytes(needle))
}

func memmemRare(haystack, needle []byte, at int, rare RareByteInfo) int {
	needleLen := len(needle)
	i1, i2 := rare.Index1, rare.Index2
	if i2 < i1 {
		i1, i2 = i2, i1
	}
	b1, b2 := needle[i1], needle[i2]
	offset := i2 - i1

	// Candidate p is a position of needle[i1]; the needle starts at p-i1.
	// The last possible start is len(haystack)-needleLen.
	lastStart := len(haystack) - needleLen
	for start := at; start <= lastStart; {
		window := haystack[start+i1 : lastStart+i1+offset+1]
		p := MemchrPair(window, b1, b2, offset)
		if p < 0 {
			return -1
		}
		cand := start + p
		if bytes.Equal(haystack[cand:cand+needleLen], needle) {
			return cand
		}
		start = cand + 1
	}
	return -1
}

// All yields the start of every occurrence of needle in haystack, overlapping
// occurrences included, in increasing order. An empty needle occurs at every
// offset from 0 to len(haystack).
func All(haystack, needle []byte) iter.Seq[int] {
	return func(yield func(int) bool) {
		for at := 0; at <= len(haystack); {
			pos := MemmemAt(haystack, needle, at)
			if pos < 0 || !yield(pos) {
				return
			}
			at = pos + 1
		}
	}
}
