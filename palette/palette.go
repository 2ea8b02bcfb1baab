// Package palette converts the 16-entry ANSI color palette between its two
// representations: the packed `[c0, c1, ..., c15]` array literal used by the
// preference store and the 16 discrete `name = value` lines used by scheme
// files.
package palette

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// Size is the number of colors in a terminal palette.
const Size = 16

// Keys lists the scheme-file key for every palette slot, ordered by ANSI
// color code 0-15: the 8 base colors followed by their bright variants.
var Keys = []string{
	"ansi-colors-black",
	"ansi-colors-red",
	"ansi-colors-green",
	"ansi-colors-yellow",
	"ansi-colors-blue",
	"ansi-colors-magenta",
	"ansi-colors-cyan",
	"ansi-colors-white",
	"ansi-colors-bright-black",
	"ansi-colors-bright-red",
	"ansi-colors-bright-green",
	"ansi-colors-bright-yellow",
	"ansi-colors-bright-blue",
	"ansi-colors-bright-magenta",
	"ansi-colors-bright-cyan",
	"ansi-colors-bright-white",
}

// FormatError reports a packed palette string that does not match the
// expected shape.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed packed palette %q", e.Input)
}

// packedAt matches the i-th element of a packed palette: a leading bracket,
// i skipped elements, one captured element, the remaining elements, a
// trailing bracket. Matching positionally instead of splitting keeps empty
// elements and stray whitespace from shifting the indexing.
var packedAt = func() [Size]*regexp.Regexp {
	var at [Size]*regexp.Regexp
	const element = `[^,\[\]]*`
	for i := range at {
		at[i] = regexp.MustCompile(
			`^\[` +
				strings.Repeat(element+",", i) +
				"(" + element + ")" +
				strings.Repeat(","+element, Size-1-i) +
				`\]$`,
		)
	}
	return at
}()

// DecodePacked parses the packed `[c0, c1, ..., c15]` form into its 16
// elements, in ANSI order. Each element has at most one leading and one
// trailing space trimmed. Any shape violation yields a single FormatError.
func DecodePacked(s string) ([]string, error) {
	colors := make([]string, Size)
	for i, re := range packedAt {
		m := re.FindStringSubmatch(s)
		if m == nil {
			return nil, &FormatError{Input: s}
		}

		v := strings.TrimPrefix(m[1], " ")
		colors[i] = strings.TrimSuffix(v, " ")
	}
	return colors, nil
}

// EncodePacked renders exactly 16 colors into the packed form.
func EncodePacked(colors []string) (string, error) {
	if len(colors) != Size {
		return "", fmt.Errorf("palette requires exactly %d colors, got %d", Size, len(colors))
	}
	return "[" + strings.Join(colors, ", ") + "]", nil
}

// Lines renders the palette as scheme-file lines, one `key = value` pair per
// slot in canonical order. Values are emitted verbatim.
func Lines(colors []string) []string {
	return lo.Map(Keys, func(k string, i int) string {
		return k + " = " + colors[i]
	})
}
