// Package itinerary turns a hyphen-separated list of airport codes into a
// priced plan: per-segment great-circle distances, the total, the regions of
// the first and last airports and the matching award chart quote.
package itinerary

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anyascii/go"
)

// RouteSeparator separates airport codes in a route string.
const RouteSeparator = "-"

var (
	// ErrRouteTooShort is returned for routes with fewer than two airports.
	ErrRouteTooShort = errors.New("route needs at least two airport codes")
	// ErrEmptyCode is returned when a route contains an empty code, as in "YYZ--LAX".
	ErrEmptyCode = errors.New("empty airport code")
)

// ParseRoute splits a route such as "yyz-yhz-lax" into uppercase codes.
// Input is transliterated to ASCII first, so typographic dashes and
// full-width letters are accepted.
func ParseRoute(s string) ([]string, error) {
	s = strings.TrimSpace(anyascii.Transliterate(s))
	if s == "" {
		return nil, ErrRouteTooShort
	}

	parts := strings.Split(s, RouteSeparator)
	codes := make([]string, 0, len(parts))
	for i, p := range parts {
		code := strings.ToUpper(strings.TrimSpace(p))
		if code == "" {
			return nil, fmt.Errorf("%w at position %d", ErrEmptyCode, i+1)
		}
		codes = append(codes, code)
	}
	if len(codes) < 2 {
		return nil, ErrRouteTooShort
	}
	return codes, nil
}

// FormatRoute joins codes back into route notation.
func FormatRoute(codes []string) string {
	return strings.Join(codes, RouteSeparator)
}
