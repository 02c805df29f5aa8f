package newick

import "strings"

// nodeFields holds the four raw pieces of a single node's text.
type nodeFields struct {
	children string // text strictly between the node's outer parentheses
	label    string
	distance string // branch length text, without the ':' separator
	comment  string // bracketed comment text, without the brackets
}

// splitFields decomposes one trimmed node string into its fields.
//
// Example: "(A,B)root:10.0[x=xx]" -> {"A,B", "root", "10.0", "x=xx"}
func splitFields(s string) (nodeFields, error) {
	var f nodeFields

	rest := s
	if strings.HasPrefix(s, "(") {
		end, err := findClosing(s, 1, parens)
		if err != nil {
			return f, err
		}
		f.children = s[1:end]
		rest = s[end+1:]
	}

	// Comments sit at the end of the node. The last character is taken to be
	// the closing bracket and dropped without re-checking balance, so a
	// literal ']' inside the comment text cuts it short.
	if i := strings.IndexByte(rest, '['); i >= 0 {
		comment := rest[i+1:]
		if len(comment) > 0 {
			comment = comment[:len(comment)-1]
		}
		f.comment = comment
		rest = rest[:i]
	}

	if i := strings.IndexByte(rest, ':'); i >= 0 {
		f.label, f.distance = rest[:i], rest[i+1:]
	} else {
		f.label = rest
	}
	f.label = strings.TrimSpace(f.label)

	return f, nil
}
