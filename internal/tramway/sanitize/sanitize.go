// Package sanitize normalizes untrusted destination text for the display
// wire format: one line per passage, '|' between fields, so neither may
// survive in the text itself.
package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks and recomposes, which
// turns "Château" into "Chateau".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Sanitize strips diacritics from s, replaces the field delimiter and any
// line break with a single space, and truncates to maxLen runes. Empty input
// yields empty output.
func Sanitize(s string, maxLen int) string {
	if s == "" {
		return ""
	}

	stripped, _, err := transform.String(stripMarks, s)
	if err != nil {
		// invalid UTF-8 passes through untransformed; the delimiter
		// replacement below still holds
		stripped = s
	}

	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '|', '\n', '\r':
			return ' '
		}
		return r
	}, stripped)

	if maxLen >= 0 {
		if r := []rune(cleaned); len(r) > maxLen {
			cleaned = string(r[:maxLen])
		}
	}
	return cleaned
}
