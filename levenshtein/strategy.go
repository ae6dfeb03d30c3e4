package levenshtein

import (
	"fmt"
	"strings"
)

// Strategy selects the algorithm an Engine uses. All strategies return
// identical results.
type Strategy uint8

const (
	// Auto picks BitVector when the shorter input is longer than the Myers
	// threshold and Diagonal otherwise.
	Auto Strategy = iota

	// Diagonal is the banded anti-diagonal DP.
	Diagonal

	// BitVector is Myers' bit-parallel algorithm over 64-bit blocks.
	BitVector

	// Exponential runs the banded DP with a doubling bound.
	Exponential
)

func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case Diagonal:
		return "diagonal"
	case BitVector:
		return "bitvector"
	case Exponential:
		return "exponential"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// ParseStrategy parses a strategy name as printed by String.
func ParseStrategy(s string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return Auto, true
	case "diagonal":
		return Diagonal, true
	case "bitvector", "myers":
		return BitVector, true
	case "exponential", "exp":
		return Exponential, true
	default:
		return Auto, false
	}
}
