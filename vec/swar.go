package vec

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// swarKernel implements Kernel with SWAR arithmetic on 64-bit words.
// Each step processes words consecutive words; lanes that do not fill a whole
// word are handled lane by lane.
type swarKernel[T Lanes] struct {
	backend Backend
	words   int
	size    int // bytes per lane
	bits    uint
	lo      uint64 // low bit of every lane
	hi      uint64 // high bit of every lane
}

func newSWARKernel[T Lanes](b Backend, words int) swarKernel[T] {
	var zero T
	size := int(unsafe.Sizeof(zero))
	k := swarKernel[T]{backend: b, words: words, size: size, bits: uint(size * 8)}
	switch size {
	case 1:
		k.lo, k.hi = 0x0101010101010101, 0x8080808080808080
	case 2:
		k.lo, k.hi = 0x0001000100010001, 0x8000800080008000
	default:
		k.lo, k.hi = 0x0000000100000001, 0x8000000080000000
	}
	return k
}

func (k swarKernel[T]) Backend() Backend   { return k.backend }
func (k swarKernel[T]) RegisterLanes() int { return k.words * 8 / k.size }

func bytesOf[T Lanes](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}

// apply2 runs word over every whole word of dst, a and b, then lane over the
// remaining tail lanes.
func (k swarKernel[T]) apply2(dst, a, b []T, word func(x, y uint64) uint64, lane func(x, y T) T) {
	checkBinary(dst, a, b)
	n := len(dst)
	a, b = a[:n], b[:n]
	db, ab, bb := bytesOf(dst), bytesOf(a), bytesOf(b)

	step := k.words * 8
	full := len(db) / 8 * 8
	off := 0
	if k.words == 4 {
		// All eight input words of a block are loaded before any result is
		// stored, so the four word chains carry no dependency on each other
		// even when dst aliases an input.
		for ; off+32 <= full; off += 32 {
			x0, y0 := binary.NativeEndian.Uint64(ab[off:]), binary.NativeEndian.Uint64(bb[off:])
			x1, y1 := binary.NativeEndian.Uint64(ab[off+8:]), binary.NativeEndian.Uint64(bb[off+8:])
			x2, y2 := binary.NativeEndian.Uint64(ab[off+16:]), binary.NativeEndian.Uint64(bb[off+16:])
			x3, y3 := binary.NativeEndian.Uint64(ab[off+24:]), binary.NativeEndian.Uint64(bb[off+24:])
			r0, r1, r2, r3 := word(x0, y0), word(x1, y1), word(x2, y2), word(x3, y3)
			binary.NativeEndian.PutUint64(db[off:], r0)
			binary.NativeEndian.PutUint64(db[off+8:], r1)
			binary.NativeEndian.PutUint64(db[off+16:], r2)
			binary.NativeEndian.PutUint64(db[off+24:], r3)
		}
	} else {
		for ; off+step <= full; off += step {
			for w := off; w < off+step; w += 8 {
				binary.NativeEndian.PutUint64(db[w:], word(binary.NativeEndian.Uint64(ab[w:]), binary.NativeEndian.Uint64(bb[w:])))
			}
		}
	}
	for ; off < full; off += 8 {
		binary.NativeEndian.PutUint64(db[off:], word(binary.NativeEndian.Uint64(ab[off:]), binary.NativeEndian.Uint64(bb[off:])))
	}
	for i := off / k.size; i < n; i++ {
		dst[i] = lane(a[i], b[i])
	}
}

// forWords calls word for every whole word of a and lane for each tail lane.
func (k swarKernel[T]) forWords(a []T, word func(x uint64), lane func(x T)) {
	ab := bytesOf(a)
	full := len(ab) / 8 * 8
	for off := 0; off < full; off += 8 {
		word(binary.NativeEndian.Uint64(ab[off:]))
	}
	for i := full / k.size; i < len(a); i++ {
		lane(a[i])
	}
}

func (k swarKernel[T]) add(x, y uint64) uint64 {
	return ((x &^ k.hi) + (y &^ k.hi)) ^ ((x ^ y) & k.hi)
}

func (k swarKernel[T]) sub(x, y uint64) uint64 {
	return ((x | k.hi) - (y &^ k.hi)) ^ ((x ^ ^y) & k.hi)
}

// expand widens a word holding only lane high bits into full-lane masks.
func (k swarKernel[T]) expand(m uint64) uint64 {
	return (m - (m >> (k.bits - 1))) | m
}

// lt returns an all-ones lane mask where x < y.
func (k swarKernel[T]) lt(x, y uint64) uint64 {
	d := k.sub(x, y)
	borrow := ((^x & y) | (^(x ^ y) & d)) & k.hi
	return k.expand(borrow)
}

// nonZero returns the high bit of every lane of z that is non-zero.
func (k swarKernel[T]) nonZero(z uint64) uint64 {
	return (((z &^ k.hi) + (k.hi - k.lo)) | z) & k.hi
}

func (k swarKernel[T]) Broadcast(dst []T, v T) {
	if len(dst) == 0 {
		return
	}
	dst[0] = v
	for filled := 1; filled < len(dst); filled *= 2 {
		copy(dst[filled:], dst[:filled])
	}
}

func (k swarKernel[T]) Add(dst, a, b []T) {
	k.apply2(dst, a, b, k.add, func(x, y T) T { return x + y })
}

func (k swarKernel[T]) AddSat(dst, a, b []T) {
	k.apply2(dst, a, b, func(x, y uint64) uint64 {
		sum := k.add(x, y)
		carry := ((x & y) | ((x ^ y) &^ sum)) & k.hi
		return sum | k.expand(carry)
	}, addSat[T])
}

func (k swarKernel[T]) Sub(dst, a, b []T) {
	k.apply2(dst, a, b, k.sub, func(x, y T) T { return x - y })
}

func (k swarKernel[T]) SubSat(dst, a, b []T) {
	k.apply2(dst, a, b, func(x, y uint64) uint64 {
		return k.sub(x, y) &^ k.lt(x, y)
	}, subSat[T])
}

func (k swarKernel[T]) Min(dst, a, b []T) {
	k.apply2(dst, a, b, func(x, y uint64) uint64 {
		m := k.lt(x, y)
		return (x & m) | (y &^ m)
	}, func(x, y T) T { return min(x, y) })
}

func (k swarKernel[T]) Max(dst, a, b []T) {
	k.apply2(dst, a, b, func(x, y uint64) uint64 {
		m := k.lt(x, y)
		return (y & m) | (x &^ m)
	}, func(x, y T) T { return max(x, y) })
}

func (k swarKernel[T]) CmpEq(dst, a, b []T) {
	k.apply2(dst, a, b, func(x, y uint64) uint64 {
		return ^k.expand(k.nonZero(x ^ y))
	}, func(x, y T) T { return maskOf[T](x == y) })
}

func (k swarKernel[T]) CmpGt(dst, a, b []T) {
	k.apply2(dst, a, b, func(x, y uint64) uint64 {
		return k.lt(y, x)
	}, func(x, y T) T { return maskOf[T](x > y) })
}

func (k swarKernel[T]) And(dst, a, b []T) {
	k.apply2(dst, a, b, func(x, y uint64) uint64 { return x & y }, func(x, y T) T { return x & y })
}

func (k swarKernel[T]) AndNot(dst, a, b []T) {
	k.apply2(dst, a, b, func(x, y uint64) uint64 { return x &^ y }, func(x, y T) T { return x &^ y })
}

func (k swarKernel[T]) Or(dst, a, b []T) {
	k.apply2(dst, a, b, func(x, y uint64) uint64 { return x | y }, func(x, y T) T { return x | y })
}

func (k swarKernel[T]) Xor(dst, a, b []T) {
	k.apply2(dst, a, b, func(x, y uint64) uint64 { return x ^ y }, func(x, y T) T { return x ^ y })
}

// Blend is built from three word passes so every operand is read as whole words.
func (k swarKernel[T]) Blend(dst, mask, a, b []T) {
	checkBinary(dst, mask, a)
	n := len(dst)
	mask, a, b = mask[:n], a[:n], b[:n]
	db, mb, ab, bb := bytesOf(dst), bytesOf(mask), bytesOf(a), bytesOf(b)
	full := len(db) / 8 * 8
	for off := 0; off < full; off += 8 {
		m := binary.NativeEndian.Uint64(mb[off:])
		x := binary.NativeEndian.Uint64(ab[off:])
		y := binary.NativeEndian.Uint64(bb[off:])
		binary.NativeEndian.PutUint64(db[off:], (m&y)|(x&^m))
	}
	for i := full / k.size; i < n; i++ {
		dst[i] = (b[i] & mask[i]) | (a[i] &^ mask[i])
	}
}

func (k swarKernel[T]) ShiftUp(dst, src []T, fill T)   { shiftUp(dst, src, fill) }
func (k swarKernel[T]) ShiftDown(dst, src []T, fill T) { shiftDown(dst, src, fill) }
func (k swarKernel[T]) RotateUp(dst, src []T)          { rotateUp(dst, src) }

func (k swarKernel[T]) ReduceSum(a []T) uint64 {
	var sum uint64
	mask := uint64(MaxOf[T]())
	k.forWords(a, func(x uint64) {
		for s := uint(0); s < 64; s += k.bits {
			sum += (x >> s) & mask
		}
	}, func(x T) { sum += uint64(x) })
	return sum
}

func (k swarKernel[T]) ReduceMin(a []T) T {
	m := MaxOf[T]()
	mask := uint64(m)
	k.forWords(a, func(x uint64) {
		for s := uint(0); s < 64; s += k.bits {
			m = min(m, T((x>>s)&mask))
		}
	}, func(x T) { m = min(m, x) })
	return m
}

func (k swarKernel[T]) CountNonZero(a []T) int {
	n := 0
	k.forWords(a, func(x uint64) {
		n += bits.OnesCount64(k.nonZero(x))
	}, func(x T) {
		if x != 0 {
			n++
		}
	})
	return n
}

func (k swarKernel[T]) LoadBytes(dst []T, src []byte)         { loadBytes(dst, src) }
func (k swarKernel[T]) LoadBytesReversed(dst []T, src []byte) { loadBytesReversed(dst, src) }
func (k swarKernel[T]) Store(dst, src []T)                    { store(dst, src) }
