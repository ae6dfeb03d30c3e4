// Package conv provides checked integer conversions for the distance engines.
//
// These functions perform bounds checking before narrowing an int into a
// lane. They panic on overflow since this indicates a programming error: the
// lane-width selector must never pick a width too narrow for a bound.
package conv

import (
	"fmt"

	"github.com/coregx/editdist/vec"
)

// ToLane converts n to lane type T.
// Panics if n < 0 or n exceeds the lane maximum.
//
//go:inline
func ToLane[T vec.Lanes](n int) T {
	// Compare as uint64 to stay correct where int is 32 bits.
	if n < 0 || uint64(n) > uint64(vec.MaxOf[T]()) {
		panic(fmt.Sprintf("integer overflow: %d out of range for %d-bit lane", n, bitsOf[T]()))
	}
	return T(n)
}

func bitsOf[T vec.Lanes]() int {
	m := uint64(vec.MaxOf[T]())
	b := 0
	for ; m != 0; m >>= 1 {
		b++
	}
	return b
}
