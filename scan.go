package newick

import (
	"fmt"
	"strings"
)

// delimPair is an opening/closing character pair defining a nestable region.
type delimPair struct {
	open  byte
	close byte
}

var (
	parens   = delimPair{'(', ')'}
	brackets = delimPair{'[', ']'}
)

// findClosing returns the index of the closing delimiter that balances the
// opening one just before start, skipping over any nested pairs of the same
// type in between.
//
// Example: findClosing("((),())()", 1, parens) == 6
func findClosing(s string, start int, pair delimPair) (int, error) {
	nextClosing := indexByteFrom(s, start, pair.close)
	if nextClosing < 0 {
		return 0, fmt.Errorf("%w: no %q after offset %d", ErrUnbalanced, pair.close, start)
	}

	nextOpening := indexByteFrom(s, start, pair.open)
	if nextOpening < 0 || nextClosing < nextOpening {
		return nextClosing, nil
	}

	// A nested pair begins before the next closer. Resolve it first, then
	// resume the search just past its closer.
	skip, err := findClosing(s, nextOpening+1, pair)
	if err != nil {
		return 0, err
	}
	return findClosing(s, skip+1, pair)
}

func indexByteFrom(s string, start int, c byte) int {
	if start >= len(s) {
		return -1
	}
	i := strings.IndexByte(s[start:], c)
	if i < 0 {
		return -1
	}
	return start + i
}
