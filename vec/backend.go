package vec

import (
	"fmt"
	"strings"
)

// Backend identifies a kernel implementation.
type Backend uint8

const (
	// Scalar processes one lane per step. Always compiled in.
	Scalar Backend = iota

	// NarrowAccel packs lanes into one 64-bit register per step.
	NarrowAccel

	// WideAccel packs lanes into a 256-bit block (four 64-bit registers) per step.
	WideAccel
)

// String returns the name accepted by ParseBackend.
func (b Backend) String() string {
	switch b {
	case Scalar:
		return "scalar"
	case NarrowAccel:
		return "narrow"
	case WideAccel:
		return "wide"
	default:
		return fmt.Sprintf("Backend(%d)", uint8(b))
	}
}

// RegisterBytes is the number of bytes a backend processes per step.
// Scalar reports 0: its step is one lane regardless of lane width.
func (b Backend) RegisterBytes() int {
	switch b {
	case NarrowAccel:
		return 8
	case WideAccel:
		return 32
	default:
		return 0
	}
}

// ParseBackend parses a backend name. Matching is case-insensitive and also
// accepts the long names "narrowaccel" and "wideaccel".
func ParseBackend(s string) (Backend, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar", "generic":
		return Scalar, true
	case "narrow", "narrowaccel":
		return NarrowAccel, true
	case "wide", "wideaccel":
		return WideAccel, true
	default:
		return Scalar, false
	}
}

// Available returns the compiled-in backends, slowest first.
// Building with the purego tag leaves only Scalar.
func Available() []Backend {
	if !acceleratedBuild {
		return []Backend{Scalar}
	}
	return []Backend{Scalar, NarrowAccel, WideAccel}
}

// IsAvailable reports whether b is compiled in.
func IsAvailable(b Backend) bool {
	for _, have := range Available() {
		if have == b {
			return true
		}
	}
	return false
}

// KernelFor returns the kernel implementing backend b for lane type T.
// Backends that are not compiled in degrade to Scalar.
func KernelFor[T Lanes](b Backend) Kernel[T] {
	if acceleratedBuild {
		switch b {
		case NarrowAccel:
			return newSWARKernel[T](NarrowAccel, 1)
		case WideAccel:
			return newSWARKernel[T](WideAccel, 4)
		}
	}
	return scalarKernel[T]{}
}
