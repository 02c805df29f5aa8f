package newick

import "errors"

// ErrMissingTerminator reports that a tree passed to ParseTree does not end
// with the ';' terminator.
var ErrMissingTerminator = errors.New("newick: tree must end with ';'")

// ErrUnbalanced reports an opening delimiter with no matching closing one.
var ErrUnbalanced = errors.New("newick: unbalanced delimiters")
