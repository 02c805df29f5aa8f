package format

import (
	"io"

	"github.com/dhamidi/newick/tree"
)

// TextEncoder writes one node per line, indented by depth.
type TextEncoder struct {
	w    io.Writer
	root *tree.Node
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(root *tree.Node) error {
	e.root = root
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	return []byte(e.root.String()), nil
}
