package aggregate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadPatternID reports a pattern identifier that passed the prefix filter
// but is not in the expected namespace:line:rest form.
var ErrBadPatternID = errors.New("malformed pattern id")

// MatchesConfiguredLines reports whether the pattern identifier belongs to
// one of the configured lines. Prefix match: prefixes carry the agency
// namespace plus line code ("SEM:A:").
func MatchesConfiguredLines(patternID string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(patternID, prefix) {
			return true
		}
	}
	return false
}

// LineCode extracts the line code from a pattern identifier: the second
// colon-delimited segment ("SEM:A:123" -> "A").
func LineCode(patternID string) (string, error) {
	parts := strings.Split(patternID, ":")
	if len(parts) < 3 || parts[1] == "" {
		return "", fmt.Errorf("%w: %q", ErrBadPatternID, patternID)
	}
	return parts[1], nil
}
