// Package simd provides byte-search primitives used by the exact search path.
//
// The scans use SWAR (SIMD Within A Register): eight bytes are compared per
// step with uint64 arithmetic. They are pure Go and behave identically on every
// platform.
package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)
)

// zeroBytes marks the high bit of every zero byte of v.
//
// Formula (Hacker's Delight): (v - 0x01..) & ^v & 0x80..
// Only the lowest marked byte is exact; higher bytes may be false positives
// after a borrow, so callers take TrailingZeros.
func zeroBytes(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	// Example: needle=0x42 -> mask=0x4242424242424242
	mask := uint64(needle) * lo8

	idx := 0
	for ; idx+8 <= n; idx += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		if hit := zeroBytes(chunk ^ mask); hit != 0 {
			return idx + bits.TrailingZeros64(hit)/8
		}
	}
	for ; idx < n; idx++ {
		if haystack[idx] == needle {
			return idx
		}
	}
	return -1
}

// MemchrPair returns the first position i where haystack[i] == byte1 and
// haystack[i+offset] == byte2, or -1.
//
// Requiring two bytes at a fixed distance is far more selective than a single
// byte, so Memmem verifies fewer false candidates.
func MemchrPair(haystack []byte, byte1, byte2 byte, offset int) int {
	n := len(haystack)
	if offset < 0 || n <= offset {
		return -1
	}

	mask1 := uint64(byte1) * lo8
	mask2 := uint64(byte2) * lo8

	idx := 0
	for ; idx+8+offset <= n; idx += 8 {
		// Bit k of hit1 marks haystack[idx+k]; bit k of hit2 marks
		// haystack[idx+offset+k]. Their AND marks positions satisfying both.
		hit1 := zeroBytes(binary.LittleEndian.Uint64(haystack[idx:]) ^ mask1)
		hit2 := zeroBytes(binary.LittleEndian.Uint64(haystack[idx+offset:]) ^ mask2)
		for hit := hit1 & hit2; hit != 0; hit &= hit - 1 {
			// zeroBytes can over-report above the first true zero, so check.
			i := idx + bits.TrailingZeros64(hit)/8
			if haystack[i] == byte1 && haystack[i+offset] == byte2 {
				return i
			}
		}
	}
	for ; idx+offset < n; idx++ {
		if haystack[idx] == byte1 && haystack[idx+offset] == byte2 {
			return idx
		}
	}
	return -1
}
