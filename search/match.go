package search

import (
	"errors"
	"fmt"
)

// ErrNegativeBound is returned when a search is requested with k < 0.
var ErrNegativeBound = errors.New("search: negative distance bound")

// Match is one approximate occurrence of a pattern in a text.
type Match struct {
	// Start is the start offset of the longest alignment with cost K that
	// ends at End.
	Start int
	// End is the exclusive end offset in the text.
	End int
	// K is the edit distance between the pattern and text[Start:End].
	K int
}

func (m Match) String() string {
	return fmt.Sprintf("[%d,%d) k=%d", m.Start, m.End, m.K)
}
