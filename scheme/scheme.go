// Package scheme implements the flat `key = value` text format used to
// export and import terminal color schemes.
//
// The format is line-oriented and carries no quoting: values run verbatim
// from the first non-blank character after the separator to the end of the
// line. Lines that match no requested property are ignored.
package scheme

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/mo"
	"github.com/termtint-cli/termtint/palette"
)

// MissingPropertyError reports a required property with no matching line.
type MissingPropertyError struct {
	Property string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("missing required property %q", e.Property)
}

// Parse looks the named property up in a scheme document. The first matching
// line wins when duplicates exist. Only the line structure is stripped; the
// value itself is returned untouched.
func Parse(text, property string) mo.Option[string] {
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(property) + `[ \t]*=[ \t]*(.*?)[ \t]*$`)

	for _, line := range strings.Split(text, "\n") {
		if m := re.FindStringSubmatch(line); m != nil {
			return mo.Some(m[1])
		}
	}
	return mo.None[string]()
}

// ParseRequired is Parse with an absent property promoted to an error.
func ParseRequired(text, property string) (string, error) {
	v, ok := Parse(text, property).Get()
	if !ok {
		return "", &MissingPropertyError{Property: property}
	}
	return v, nil
}

// Palette extracts the 16 ANSI palette entries from a scheme document, in
// canonical order.
func Palette(text string) ([]string, error) {
	colors := make([]string, palette.Size)
	for i, key := range palette.Keys {
		v, err := ParseRequired(text, key)
		if err != nil {
			return nil, err
		}
		colors[i] = v
	}
	return colors, nil
}

// Dump renders a complete scheme document: the three scalar properties in
// fixed order, followed by the 16 palette lines. Values are written raw.
func Dump(font, foreground, background string, colors []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "font = %s\n", font)
	fmt.Fprintf(&b, "foreground-color = %s\n", foreground)
	fmt.Fprintf(&b, "background-color = %s\n", background)
	for _, line := range palette.Lines(colors) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}
