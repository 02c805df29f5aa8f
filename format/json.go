package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/newick/tree"
)

type JSONEncoder struct {
	w    io.Writer
	root *tree.Node
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(root *tree.Node) error {
	e.root = root
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.root, "", "  ")
}
