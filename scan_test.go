package newick

import (
	"errors"
	"testing"
)

func TestFindClosing(t *testing.T) {
	tests := []struct {
		input string
		start int
		pair  delimPair
		want  int
	}{
		{"((),())()", 1, parens, 6},
		{"()", 1, parens, 1},
		{"(a,b)", 1, parens, 4},
		{"(a,(b,c))", 1, parens, 8},
		{"((a,b),(c,d))x", 1, parens, 12},
		{"(()())", 1, parens, 5},
		{"[a[b]c]", 1, brackets, 6},
		{"[x]", 1, brackets, 2},
		{"((),())()", 8, parens, 8},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := findClosing(tt.input, tt.start, tt.pair)
			if err != nil {
				t.Fatalf("findClosing(%q, %d): %v", tt.input, tt.start, err)
			}
			if got != tt.want {
				t.Errorf("findClosing(%q, %d) = %d, want %d", tt.input, tt.start, got, tt.want)
			}
		})
	}
}

func TestFindClosingBalancesEveryDepth(t *testing.T) {
	// The returned index is the only position where the nesting depth opened
	// just before start returns to zero.
	input := "(a,((b),c),(d))tail"
	got, err := findClosing(input, 1, parens)
	if err != nil {
		t.Fatal(err)
	}

	depth := 1
	for i := 1; i < len(input); i++ {
		switch input[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			if i != got {
				t.Errorf("depth reaches zero at %d, findClosing returned %d", i, got)
			}
			break
		}
	}
}

func TestFindClosingUnbalanced(t *testing.T) {
	tests := []struct {
		input string
		start int
		pair  delimPair
	}{
		{"((a,b)", 1, parens},
		{"(a,b", 1, parens},
		{"", 1, parens},
		{"[a[b]", 1, brackets},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := findClosing(tt.input, tt.start, tt.pair)
			if !errors.Is(err, ErrUnbalanced) {
				t.Errorf("findClosing(%q, %d) error = %v, want ErrUnbalanced", tt.input, tt.start, err)
			}
		})
	}
}
