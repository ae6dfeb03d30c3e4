package vec

import "fmt"

// Lane movement and loads are memory-bound and identical across backends:
// copy compiles to the runtime's vectorised memmove on every platform.

func shiftUp[T Lanes](dst, src []T, fill T) {
	checkUnary(dst, src)
	if len(dst) == 0 {
		return
	}
	copy(dst[1:], src[:len(src)-1])
	dst[0] = fill
}

func shiftDown[T Lanes](dst, src []T, fill T) {
	checkUnary(dst, src)
	n := len(dst)
	if n == 0 {
		return
	}
	copy(dst[:n-1], src[1:])
	dst[n-1] = fill
}

func rotateUp[T Lanes](dst, src []T) {
	checkUnary(dst, src)
	n := len(dst)
	if n == 0 {
		return
	}
	top := src[n-1]
	copy(dst[1:], src[:n-1])
	dst[0] = top
}

func loadBytes[T Lanes](dst []T, src []byte) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("vec: load of %d bytes into %d lanes", len(src), len(dst)))
	}
	if b, ok := any(dst).([]uint8); ok {
		copy(b, src)
		return
	}
	for i, c := range src {
		dst[i] = T(c)
	}
}

func loadBytesReversed[T Lanes](dst []T, src []byte) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("vec: load of %d bytes into %d lanes", len(src), len(dst)))
	}
	last := len(src) - 1
	for i := range src {
		dst[i] = T(src[last-i])
	}
}

func store[T Lanes](dst, src []T) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("vec: store of %d lanes into %d", len(src), len(dst)))
	}
	copy(dst, src)
}

func checkUnary[T Lanes](dst, src []T) {
	if len(dst) != len(src) {
		panic(fmt.Sprintf("vec: lane count mismatch: dst=%d src=%d", len(dst), len(src)))
	}
}

// checkBinary verifies operand lengths when built with the editdist_debug tag.
// Without it, a short operand still panics on the first out-of-range index.
func checkBinary[T Lanes](dst, a, b []T) {
	if debugAssertions && (len(a) != len(dst) || len(b) != len(dst)) {
		panic(fmt.Sprintf("vec: lane count mismatch: dst=%d a=%d b=%d", len(dst), len(a), len(b)))
	}
}
