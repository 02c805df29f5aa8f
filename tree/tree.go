// Package tree provides a ready-made node type and aggregator for callers
// that do not need a custom tree representation.
package tree

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dhamidi/newick"
	"github.com/dhamidi/newick/nhx"
)

// Node is one node of a parsed Newick tree.
type Node struct {
	Label    string  `json:"label,omitempty"`
	Children []*Node `json:"children,omitempty"`

	// Length is the branch length between this node and its parent. A nil
	// Length means the input carried no branch length for this node.
	Length *float64 `json:"length,omitempty"`

	// Comment is the raw bracketed comment text, brackets removed. It stays
	// empty when the tree was parsed with ParseNHX.
	Comment string `json:"comment,omitempty"`

	// Features holds decoded NHX annotations. It is only populated by
	// ParseNHX.
	Features map[string]string `json:"features,omitempty"`
}

// Aggregate builds a Node from parsed parts. It satisfies newick.Aggregator
// for the default strategies.
func Aggregate(label string, children []*Node, length *float64, comment string) *Node {
	return &Node{Label: label, Children: children, Length: length, Comment: comment}
}

// Parse parses a complete tree, terminator included, into Nodes.
func Parse(text string) (*Node, error) {
	return newick.ParseTree(text, Aggregate)
}

// ParseFragment parses a single node fragment into Nodes.
func ParseFragment(text string) (*Node, error) {
	return newick.ParseFragment(text, Aggregate)
}

// ParseNHX parses a complete tree whose comments carry NHX annotations,
// decoding them into each node's Features map.
func ParseNHX(text string) (*Node, error) {
	p := newick.Parser[*Node, *float64, map[string]string]{
		Aggregate: func(label string, children []*Node, length *float64, features map[string]string) *Node {
			return &Node{Label: label, Children: children, Length: length, Features: features}
		},
		ParseDistance: newick.BranchLength,
		ParseFeature:  nhx.Decode,
	}
	return p.ParseTree(text)
}

// Count returns the number of nodes in the tree rooted at n.
func (n *Node) Count() int {
	total := 1
	for _, child := range n.Children {
		total += child.Count()
	}
	return total
}

// String recursively converts the tree to a string, with whitespace
// indenting to indicate depth.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb, 0)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	if n.Label == "" {
		sb.WriteString("<unnamed>")
	} else {
		sb.WriteString(n.Label)
	}
	if n.Length != nil {
		fmt.Fprintf(sb, " (%g)", *n.Length)
	}
	if n.Comment != "" {
		fmt.Fprintf(sb, " [%s]", n.Comment)
	}
	for _, key := range sortedKeys(n.Features) {
		fmt.Fprintf(sb, " %s=%s", key, n.Features[key])
	}
	sb.WriteByte('\n')
	for _, child := range n.Children {
		child.write(sb, depth+1)
	}
}

func sortedKeys(m map[string]string) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
