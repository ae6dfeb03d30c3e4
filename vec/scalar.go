package vec

// scalarKernel implements Kernel one lane at a time. It is the reference the
// SWAR kernels are tested against and the fallback when nothing else is
// compiled in.
type scalarKernel[T Lanes] struct{}

func (scalarKernel[T]) Backend() Backend   { return Scalar }
func (scalarKernel[T]) RegisterLanes() int { return 1 }

func (scalarKernel[T]) Broadcast(dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

func (scalarKernel[T]) Add(dst, a, b []T) {
	checkBinary(dst, a, b)
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func (scalarKernel[T]) AddSat(dst, a, b []T) {
	checkBinary(dst, a, b)
	for i := range dst {
		dst[i] = addSat(a[i], b[i])
	}
}

func (scalarKernel[T]) Sub(dst, a, b []T) {
	checkBinary(dst, a, b)
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func (scalarKernel[T]) SubSat(dst, a, b []T) {
	checkBinary(dst, a, b)
	for i := range dst {
		dst[i] = subSat(a[i], b[i])
	}
}

func (scalarKernel[T]) Min(dst, a, b []T) {
	checkBinary(dst, a, b)
	for i := range dst {
		dst[i] = min(a[i], b[i])
	}
}

func (scalarKernel[T]) Max(dst, a, b []T) {
	checkBinary(dst, a, b)
	for i := range dst {
		dst[i] = max(a[i], b[i])
	}
}

func (scalarKernel[T]) CmpEq(dst, a, b []T) {
	checkBinary(dst, a, b)
	for i := range dst {
		dst[i] = maskOf[T](a[i] == b[i])
	}
}

func (scalarKernel[T]) CmpGt(dst, a, b []T) {
	checkBinary(dst, a, b)
	for i := range dst {
		dst[i] = maskOf[T](a[i] > b[i])
	}
}

func (scalarKernel[T]) And(dst, a, b []T) {
	checkBinary(dst, a, b)
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
}

func (scalarKernel[T]) AndNot(dst, a, b []T) {
	checkBinary(dst, a, b)
	for i := range dst {
		dst[i] = a[i] &^ b[i]
	}
}

func (scalarKernel[T]) Or(dst, a, b []T) {
	checkBinary(dst, a, b)
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
}

func (scalarKernel[T]) Xor(dst, a, b []T) {
	checkBinary(dst, a, b)
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

func (scalarKernel[T]) Blend(dst, mask, a, b []T) {
	checkBinary(dst, a, b)
	checkBinary(dst, mask, a)
	for i := range dst {
		dst[i] = (b[i] & mask[i]) | (a[i] &^ mask[i])
	}
}

func (scalarKernel[T]) ShiftUp(dst, src []T, fill T)   { shiftUp(dst, src, fill) }
func (scalarKernel[T]) ShiftDown(dst, src []T, fill T) { shiftDown(dst, src, fill) }
func (scalarKernel[T]) RotateUp(dst, src []T)          { rotateUp(dst, src) }

func (scalarKernel[T]) ReduceSum(a []T) uint64 {
	var sum uint64
	for _, v := range a {
		sum += uint64(v)
	}
	return sum
}

func (scalarKernel[T]) ReduceMin(a []T) T {
	m := MaxOf[T]()
	for _, v := range a {
		m = min(m, v)
	}
	return m
}

func (scalarKernel[T]) CountNonZero(a []T) int {
	n := 0
	for _, v := range a {
		if v != 0 {
			n++
		}
	}
	return n
}

func (scalarKernel[T]) LoadBytes(dst []T, src []byte)         { loadBytes(dst, src) }
func (scalarKernel[T]) LoadBytesReversed(dst []T, src []byte) { loadBytesReversed(dst, src) }
func (scalarKernel[T]) Store(dst, src []T)                    { store(dst, src) }

func addSat[T Lanes](a, b T) T {
	s := a + b
	if s < a {
		return MaxOf[T]()
	}
	return s
}

func subSat[T Lanes](a, b T) T {
	if a < b {
		return 0
	}
	return a - b
}

func maskOf[T Lanes](ok bool) T {
	if ok {
		return MaxOf[T]()
	}
	return 0
}
