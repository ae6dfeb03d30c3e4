// Package lane selects the lane width the distance engines run at.
//
// A bounded computation never needs to represent a cost above k+1 (the
// sentinel for "outside the band"), so small bounds can run at 8-bit lanes and
// fit four times as many cells in a register as 32-bit lanes would.
package lane

import "fmt"

// Width is a lane width in bits.
type Width uint8

const (
	Eight Width = iota
	Sixteen
	ThirtyTwo
)

// Largest bounds served by the narrow widths. The sentinel k+1 stays strictly
// below the lane maximum so one saturating step above it still compares high.
const (
	MaxBoundEight   = 254
	MaxBoundSixteen = 65534
)

// Select returns the lane width for bound k. Unbounded computations always use
// ThirtyTwo. Negative bounds select Eight; callers reject them before running.
func Select(k int, bounded bool) Width {
	switch {
	case !bounded:
		return ThirtyTwo
	case k <= MaxBoundEight:
		return Eight
	case k <= MaxBoundSixteen:
		return Sixteen
	default:
		return ThirtyTwo
	}
}

// ForValue returns the narrowest width whose maximum holds v.
func ForValue(v int) Width {
	switch {
	case v <= 0xff:
		return Eight
	case v <= 0xffff:
		return Sixteen
	default:
		return ThirtyTwo
	}
}

// Max returns the largest value a lane of width w holds.
func (w Width) Max() uint64 {
	return 1<<w.Bits() - 1
}

// Bits returns the lane width in bits.
func (w Width) Bits() int {
	switch w {
	case Eight:
		return 8
	case Sixteen:
		return 16
	default:
		return 32
	}
}

func (w Width) String() string {
	switch w {
	case Eight:
		return "u8"
	case Sixteen:
		return "u16"
	case ThirtyTwo:
		return "u32"
	default:
		return fmt.Sprintf("Width(%d)", uint8(w))
	}
}

// Check panics if v does not fit a lane of width w.
func Check(w Width, v int) {
	if v < 0 || uint64(v) > w.Max() {
		panic(fmt.Sprintf("lane: value %d overflows %s lane (max %d)", v, w, w.Max()))
	}
}
