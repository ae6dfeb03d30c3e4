// Package vec provides the lane-parallel vector layer the edit-distance engines
// are written against.
//
// Every operation works on "long vectors": equal-length slices of unsigned lanes.
// A backend processes a long vector one register at a time, where a register
// holds RegisterLanes() lanes. Three backends exist:
//
//   - Scalar: one lane per step, always available.
//   - NarrowAccel: SWAR (SIMD Within A Register) on one 64-bit register per step.
//   - WideAccel: SWAR on a 256-bit block (four 64-bit registers) per step.
//
// All backends produce bit-identical results for identical inputs. The backend
// only changes throughput, never an answer. WideAccel does the same arithmetic
// per word as NarrowAccel; it loads a whole 256-bit block up front so the four
// words form independent chains. Any speedup comes from the CPU overlapping
// those chains, and it is smaller than four times. The process-wide backend is chosen
// once by probing CPU features (see Resolve) and can be pinned with the
// EDITDIST_BACKEND environment variable.
//
// Basic usage:
//
//	k := vec.KernelFor[uint8](vec.Resolve())
//	dst := make([]uint8, len(a))
//	k.Min(dst, a, b)
//
// Aliasing: dst may be the same slice as an input, but must not partially
// overlap one (dst = a[1:] is not allowed). Use ShiftUp/ShiftDown to move lanes.
package vec

// Lanes is the constraint for lane element types.
type Lanes interface {
	~uint8 | ~uint16 | ~uint32
}

// Kernel is the operation set every backend implements for lane type T.
//
// Mask-producing operations (CmpEq, CmpGt) write all-ones to a lane where the
// predicate holds and zero otherwise. Blend consumes such masks.
type Kernel[T Lanes] interface {
	// Backend reports which backend implements this kernel.
	Backend() Backend

	// RegisterLanes is the number of lanes processed per step.
	RegisterLanes() int

	// Broadcast sets every lane of dst to v.
	Broadcast(dst []T, v T)

	// Add is lane-wise wrapping addition.
	Add(dst, a, b []T)
	// AddSat is lane-wise addition clamped to the lane maximum.
	AddSat(dst, a, b []T)
	// Sub is lane-wise wrapping subtraction.
	Sub(dst, a, b []T)
	// SubSat is lane-wise subtraction clamped at zero.
	SubSat(dst, a, b []T)

	Min(dst, a, b []T)
	Max(dst, a, b []T)

	// CmpEq writes a mask of lanes where a == b.
	CmpEq(dst, a, b []T)
	// CmpGt writes a mask of lanes where a > b (unsigned).
	CmpGt(dst, a, b []T)

	And(dst, a, b []T)
	// AndNot computes a &^ b.
	AndNot(dst, a, b []T)
	Or(dst, a, b []T)
	Xor(dst, a, b []T)

	// Blend selects b where mask is set and a elsewhere.
	Blend(dst, mask, a, b []T)

	// ShiftUp moves every lane one position up: dst[i] = src[i-1], dst[0] = fill.
	ShiftUp(dst, src []T, fill T)
	// ShiftDown moves every lane one position down: dst[i] = src[i+1],
	// dst[len-1] = fill.
	ShiftDown(dst, src []T, fill T)
	// RotateUp is ShiftUp with the top lane wrapped around into lane 0.
	RotateUp(dst, src []T)

	// ReduceSum returns the sum of all lanes.
	ReduceSum(a []T) uint64
	// ReduceMin returns the smallest lane, or the lane maximum for an empty vector.
	ReduceMin(a []T) T
	// CountNonZero returns the number of non-zero lanes.
	CountNonZero(a []T) int

	// LoadBytes widens src into the first len(src) lanes of dst.
	LoadBytes(dst []T, src []byte)
	// LoadBytesReversed widens src into dst in reverse order:
	// dst[i] = src[len(src)-1-i].
	LoadBytesReversed(dst []T, src []byte)
	// Store copies src lanes into dst.
	Store(dst, src []T)
}

// MaxOf returns the largest value representable by a lane of type T.
func MaxOf[T Lanes]() T {
	return ^T(0)
}

// Alloc returns a zeroed long vector of at least n lanes whose length is
// rounded up to a whole number of registers for k. Engines size diagonals with
// it so no register step ever runs past the allocation.
func Alloc[T Lanes](k Kernel[T], n int) []T {
	r := k.RegisterLanes()
	if r <= 1 {
		return make([]T, n)
	}
	padded := (n + r - 1) / r * r
	return make([]T, padded)
}
