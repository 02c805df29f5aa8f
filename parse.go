// Package newick parses trees in the Newick format, with support for
// NHX-style bracketed comments.
//
// The parser does not fix the shape of the resulting tree. Callers supply an
// Aggregator that folds each node's label, already-built children, branch
// length and comment into their own representation:
//
//	agg := func(label string, children []any, _ *float64, _ string) any {
//		if len(children) == 0 {
//			return label
//		}
//		return children
//	}
//	newick.ParseTree("(A,(B,C));", agg) // -> ["A", ["B", "C"]]
//
// How branch-length and comment text are read is likewise pluggable, see
// DistanceParser and FeatureParser. The tree subpackage provides a
// ready-made node type for callers that do not need a custom representation.
package newick

import (
	"strconv"
	"strings"
)

// Aggregator folds one node into the caller's tree representation. It is
// called exactly once per node, after all of the node's children have been
// built, so construction is strictly post-order.
type Aggregator[T, D, F any] func(label string, children []T, distance D, feature F) T

// DistanceParser converts raw branch-length text into the caller's distance
// type. It receives the text after the ':' separator, or the empty string
// when the node carries no branch length.
type DistanceParser[D any] func(text string) (D, error)

// FeatureParser converts raw comment text into the caller's feature type. It
// receives the text with the surrounding brackets already removed, or the
// empty string when the node carries no comment.
type FeatureParser[F any] func(text string) (F, error)

// Parser parses Newick trees into values of type T. Its three strategies are
// independently swappable: Aggregate defines the output shape, ParseDistance
// and ParseFeature define how branch lengths and bracketed comments are
// read.
//
// A Parser holds no state of its own, so one value may be shared freely
// between goroutines as long as the strategies are pure.
type Parser[T, D, F any] struct {
	Aggregate     Aggregator[T, D, F]
	ParseDistance DistanceParser[D]
	ParseFeature  FeatureParser[F]
}

// ParseTree parses a complete tree. The text must end with the ';'
// terminator; ErrMissingTerminator is returned otherwise. Errors from the
// strategies are returned unmodified, and any error aborts the whole parse
// with no partial result.
func (p Parser[T, D, F]) ParseTree(text string) (T, error) {
	if !strings.HasSuffix(text, ";") {
		var zero T
		return zero, ErrMissingTerminator
	}
	return p.ParseFragment(text[:len(text)-1])
}

// ParseFragment parses a single node and all of its descendants. No
// terminator is required, so it can be applied to an already-isolated
// fragment of a larger tree.
func (p Parser[T, D, F]) ParseFragment(text string) (T, error) {
	var zero T

	fields, err := splitFields(strings.TrimSpace(text))
	if err != nil {
		return zero, err
	}

	var children []T
	if fields.children != "" {
		raw, err := splitSiblings(fields.children)
		if err != nil {
			return zero, err
		}
		children = make([]T, 0, len(raw))
		for _, sub := range raw {
			child, err := p.ParseFragment(sub)
			if err != nil {
				return zero, err
			}
			children = append(children, child)
		}
	}

	distance, err := p.ParseDistance(fields.distance)
	if err != nil {
		return zero, err
	}
	feature, err := p.ParseFeature(fields.comment)
	if err != nil {
		return zero, err
	}

	return p.Aggregate(fields.label, children, distance, feature), nil
}

// BranchLength is the default distance strategy. The empty string maps to
// nil, meaning no branch length was present; it is never treated as zero.
// Non-empty text must parse as a float.
func BranchLength(text string) (*float64, error) {
	if text == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// RawComment is the default feature strategy: the comment text is passed
// through unchanged.
func RawComment(text string) (string, error) {
	return text, nil
}

// ParseTree parses a complete tree using the default BranchLength and
// RawComment strategies. The text must end with ';'.
func ParseTree[T any](text string, aggregate Aggregator[T, *float64, string]) (T, error) {
	return defaultParser(aggregate).ParseTree(text)
}

// ParseFragment parses a single node fragment using the default BranchLength
// and RawComment strategies.
func ParseFragment[T any](text string, aggregate Aggregator[T, *float64, string]) (T, error) {
	return defaultParser(aggregate).ParseFragment(text)
}

func defaultParser[T any](aggregate Aggregator[T, *float64, string]) Parser[T, *float64, string] {
	return Parser[T, *float64, string]{
		Aggregate:     aggregate,
		ParseDistance: BranchLength,
		ParseFeature:  RawComment,
	}
}
