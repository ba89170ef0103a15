package utils

import "strings"

// Sanitize strips characters that could be interpreted as markup and trims
// surrounding whitespace. Defense in depth for free-text fields that end up
// stored and displayed.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '<', '>':
			// drop
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
