// Package nhx decodes New Hampshire eXtended (NHX) annotations carried in
// Newick comments.
package nhx

import (
	"fmt"
	"strings"
)

// Prefix marks a Newick comment as an NHX annotation.
const Prefix = "&&NHX:"

// Decode parses an NHX annotation into its key-value pairs.
//
// Example: "&&NHX:conf=0.01:name=INTERNAL" -> {"conf": "0.01", "name": "INTERNAL"}
//
// An empty comment decodes to a nil map, so Decode can serve as a
// newick.FeatureParser for trees where only some nodes are annotated. A
// non-empty comment must start with the NHX prefix and consist of key=value
// items separated by colons.
func Decode(comment string) (map[string]string, error) {
	if comment == "" {
		return nil, nil
	}

	body, ok := strings.CutPrefix(comment, Prefix)
	if !ok {
		return nil, fmt.Errorf("nhx: comment %q does not start with %q", comment, Prefix)
	}

	features := make(map[string]string)
	for _, item := range strings.Split(body, ":") {
		key, value, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("nhx: %q is not a key=value pair", item)
		}
		features[key] = value
	}
	return features, nil
}
