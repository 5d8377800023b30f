// Package slug derives URL segments from post titles.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes characters and drops the combining marks, so
// "café" becomes "cafe".
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converts a title into a URL segment: accents stripped, lowercased,
// "&" spelled out, everything but letters, digits and spaces removed, runs of
// spaces collapsed to single hyphens.
func Make(title string) string {
	s := strings.ReplaceAll(title, "&", "and")

	if out, _, err := transform.String(stripAccents, s); err == nil {
		s = out
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), "-")
}
