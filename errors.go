package editdist

import (
	"github.com/coregx/editdist/hamming"
	"github.com/coregx/editdist/search"
)

var (
	// ErrLengthMismatch is returned by HammingDistance for inputs of
	// different lengths. The concrete error is a *LengthMismatchError.
	ErrLengthMismatch = hamming.ErrLengthMismatch

	// ErrNegativeBound is returned by search operations given k < 0.
	ErrNegativeBound = search.ErrNegativeBound
)

// LengthMismatchError carries the lengths of a rejected Hamming pair.
type LengthMismatchError = hamming.LengthMismatchError
