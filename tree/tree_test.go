package tree

import (
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/newick"
)

func TestParse(t *testing.T) {
	root, err := Parse("(A:1.5,(B,C)inner:2)root[note];")
	if err != nil {
		t.Fatal(err)
	}

	if root.Label != "root" {
		t.Errorf("root label = %q, want %q", root.Label, "root")
	}
	if root.Comment != "note" {
		t.Errorf("root comment = %q, want %q", root.Comment, "note")
	}
	if root.Length != nil {
		t.Errorf("root length = %v, want nil", *root.Length)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(root.Children))
	}

	a := root.Children[0]
	if a.Label != "A" || a.Length == nil || *a.Length != 1.5 {
		t.Errorf("first child = %+v, want A with length 1.5", a)
	}

	inner := root.Children[1]
	if inner.Label != "inner" || len(inner.Children) != 2 {
		t.Errorf("second child = %+v, want inner with 2 children", inner)
	}
}

func TestParseMissingTerminator(t *testing.T) {
	_, err := Parse("(A,B)")
	if !errors.Is(err, newick.ErrMissingTerminator) {
		t.Errorf("error = %v, want ErrMissingTerminator", err)
	}
}

func TestParseFragment(t *testing.T) {
	node, err := ParseFragment("(B,C)inner:2")
	if err != nil {
		t.Fatal(err)
	}
	if node.Label != "inner" || len(node.Children) != 2 {
		t.Errorf("node = %+v, want inner with 2 children", node)
	}
}

func TestParseNHX(t *testing.T) {
	root, err := ParseNHX("A[&&NHX:conf=0.01:name=A];")
	if err != nil {
		t.Fatal(err)
	}

	if root.Label != "A" {
		t.Errorf("label = %q, want %q", root.Label, "A")
	}
	if len(root.Children) != 0 {
		t.Errorf("expected no children, got %d", len(root.Children))
	}
	if root.Features["conf"] != "0.01" || root.Features["name"] != "A" {
		t.Errorf("features = %v", root.Features)
	}
}

func TestParseNHXMixedAnnotations(t *testing.T) {
	root, err := ParseNHX("(A[&&NHX:S=human],B);")
	if err != nil {
		t.Fatal(err)
	}

	if got := root.Children[0].Features["S"]; got != "human" {
		t.Errorf("A species = %q, want %q", got, "human")
	}
	if root.Children[1].Features != nil {
		t.Errorf("B features = %v, want nil", root.Children[1].Features)
	}
}

func TestCount(t *testing.T) {
	root, err := Parse("(A,(B,C));")
	if err != nil {
		t.Fatal(err)
	}
	if got := root.Count(); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}
}

func TestString(t *testing.T) {
	root, err := Parse("(A:1,(B,C)inner)root;")
	if err != nil {
		t.Fatal(err)
	}

	got := root.String()
	want := strings.Join([]string{
		"root",
		"  A (1)",
		"  inner",
		"    B",
		"    C",
	}, "\n") + "\n"
	if got != want {
		t.Errorf("String() =\n%s\nwant:\n%s", got, want)
	}
}
