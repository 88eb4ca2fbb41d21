// Package tags turns delimiter-joined tag strings into canonical topic tokens.
package tags

import "strings"

// Normalize flattens raw tag strings into trimmed, non-empty tokens. A single
// raw string may join several topics with ";" or ",". First-seen order is
// preserved and duplicates are kept, since aggregation counts occurrences.
// Nil input yields an empty slice. Calling it on its own output is a no-op.
func Normalize(raw []string) []string {
	out := []string{}
	for _, r := range raw {
		for _, part := range strings.FieldsFunc(r, isDelimiter) {
			t := strings.TrimSpace(part)
			if t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

func isDelimiter(c rune) bool {
	return c == ';' || c == ','
}
