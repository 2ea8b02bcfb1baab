package store

import (
	"fmt"
	"strings"
)

// The database represents string values in GVariant notation: wrapped in
// single quotes, with embedded quotes and backslashes escaped. The scheme
// file format carries no quoting at all, so these conversions happen only
// when a scalar value crosses the store boundary.

// Quote wraps a raw scalar value for storage.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\'' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('\'')
	return b.String()
}

// Unquote strips the single-quote wrapping from a stored scalar and reverses
// the escaping. It fails if the value is not a well-formed single-quoted
// string, which is also how an absent key (read as "") surfaces.
func Unquote(s string) (string, error) {
	malformed := func() (string, error) {
		return "", fmt.Errorf("not a single-quoted scalar: %q", s)
	}

	if len(s) < 2 || s[0] != '\'' || s[len(s)-1] != '\'' {
		return malformed()
	}

	body := s[1 : len(s)-1]
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\\':
			i++
			if i == len(body) {
				// The closing quote we already consumed was escaped.
				return malformed()
			}
			b.WriteByte(body[i])
		case '\'':
			return malformed()
		default:
			b.WriteByte(body[i])
		}
	}

	return b.String(), nil
}
