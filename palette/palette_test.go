package palette

import (
	"fmt"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func sixteen(prefix string) []string {
	colors := make([]string, Size)
	for i := range colors {
		colors[i] = fmt.Sprintf("%s%02d", prefix, i)
	}
	return colors
}

func TestDecodePacked(t *testing.T) {
	Convey("DecodePacked", t, func() {
		Convey("Parses the canonical form positionally", func() {
			colors, err := DecodePacked("[a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p]")
			So(err, ShouldBeNil)
			So(colors, ShouldResemble, []string{
				"a", "b", "c", "d", "e", "f", "g", "h",
				"i", "j", "k", "l", "m", "n", "o", "p",
			})
		})

		Convey("Preserves empty elements", func() {
			colors, err := DecodePacked("[" + strings.Repeat(", ", Size-1) + "]")
			So(err, ShouldBeNil)
			So(colors, ShouldHaveLength, Size)
			for _, c := range colors {
				So(c, ShouldBeEmpty)
			}
		})

		Convey("Tolerates missing separator spaces", func() {
			colors, err := DecodePacked("[#000000,#cc0000,c,d,e,f,g,h,i,j,k,l,m,n,o,p]")
			So(err, ShouldBeNil)
			So(colors[0], ShouldEqual, "#000000")
			So(colors[1], ShouldEqual, "#cc0000")
		})

		Convey("Fails on shape violations", func() {
			for _, bad := range []string{
				"",
				"[]",
				"[a, b]",
				"a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p",
				"[a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p",
				"[a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p, q]",
			} {
				_, err := DecodePacked(bad)
				So(err, ShouldNotBeNil)

				var formatErr *FormatError
				So(func() { formatErr = err.(*FormatError) }, ShouldNotPanic)
				So(formatErr.Input, ShouldEqual, bad)
			}
		})
	})
}

func TestEncodePacked(t *testing.T) {
	Convey("EncodePacked", t, func() {
		Convey("Renders the canonical form", func() {
			s, err := EncodePacked([]string{
				"a", "b", "c", "d", "e", "f", "g", "h",
				"i", "j", "k", "l", "m", "n", "o", "p",
			})
			So(err, ShouldBeNil)
			So(s, ShouldEqual, "[a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p]")
		})

		Convey("Rejects wrong arity", func() {
			_, err := EncodePacked([]string{"a", "b"})
			So(err, ShouldNotBeNil)

			_, err = EncodePacked(nil)
			So(err, ShouldNotBeNil)
		})

		Convey("Round-trips through DecodePacked", func() {
			original := sixteen("#aabb")

			packed, err := EncodePacked(original)
			So(err, ShouldBeNil)

			decoded, err := DecodePacked(packed)
			So(err, ShouldBeNil)
			So(decoded, ShouldResemble, original)
		})
	})
}

func TestLines(t *testing.T) {
	Convey("Lines", t, func() {
		colors := sixteen("#00")
		lines := Lines(colors)

		So(lines, ShouldHaveLength, Size)
		So(lines[0], ShouldEqual, "ansi-colors-black = #0000")
		So(lines[15], ShouldEqual, "ansi-colors-bright-white = #0015")

		Convey("Keys appear in ANSI order", func() {
			So(Keys[7], ShouldEqual, "ansi-colors-white")
			So(Keys[8], ShouldEqual, "ansi-colors-bright-black")
		})
	})
}
