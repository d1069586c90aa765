package normalization

import (
	"strings"
)

// Slugify lowercases a display name and joins its words with hyphens,
// dropping any character outside [a-z0-9-].
func Slugify(input string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	slug := strings.Join(words, "-")
	var b strings.Builder
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
