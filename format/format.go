// Package format renders parsed trees for display.
package format

import (
	"encoding"

	"github.com/dhamidi/newick/tree"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(root *tree.Node) error
}
