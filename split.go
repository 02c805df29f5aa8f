package newick

import (
	"strings"
	"unicode"
)

// nodeEnd returns the index of the last character of the first node in a
// trimmed comma-separated node list: the character just before the first
// top-level comma, or the final index when no top-level comma exists. Commas
// inside parentheses or brackets are not separators.
//
// Example: nodeEnd("(A:1,(C[x],D))name:1.[c], (X,Y)") == 23
func nodeEnd(s string) (int, error) {
	end := 0

	// A leading children block is skipped in one jump.
	if strings.HasPrefix(s, "(") {
		var err error
		end, err = findClosing(s, 1, parens)
		if err != nil {
			return 0, err
		}
	}

	for end < len(s) {
		switch s[end] {
		case '(':
			skip, err := findClosing(s, end+1, parens)
			if err != nil {
				return 0, err
			}
			end = skip
		case '[':
			skip, err := findClosing(s, end+1, brackets)
			if err != nil {
				return 0, err
			}
			end = skip
		case ',':
			return end - 1, nil
		default:
			end++
		}
	}
	return len(s) - 1, nil
}

// splitSiblings separates a comma-separated list of sibling nodes into raw
// per-node substrings. Empty slots are kept as empty strings, so a fragment
// with N top-level commas always yields N+1 entries.
//
// Example: "(a,b), , :12, c[xxx]" -> ["(a,b)", "", ":12", "c[xxx]"]
func splitSiblings(s string) ([]string, error) {
	s = strings.TrimSpace(s)

	switch {
	case s == "":
		return nil, nil
	case s == ",":
		return []string{"", ""}, nil
	case strings.HasPrefix(s, ","):
		rest, err := splitSiblings(s[1:])
		if err != nil {
			return nil, err
		}
		return append([]string{""}, rest...), nil
	case strings.HasSuffix(s, ","):
		rest, err := splitSiblings(s[:len(s)-1])
		if err != nil {
			return nil, err
		}
		return append(rest, ""), nil
	}

	end, err := nodeEnd(s)
	if err != nil {
		return nil, err
	}
	node := s[:end+1]

	rest := strings.TrimLeftFunc(s[end+1:], unicode.IsSpace)
	rest = strings.TrimPrefix(rest, ",")

	tail, err := splitSiblings(rest)
	if err != nil {
		return nil, err
	}
	return append([]string{node}, tail...), nil
}
