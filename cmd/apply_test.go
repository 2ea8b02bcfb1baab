package cmd

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/termtint-cli/termtint/filesystem"
	"github.com/termtint-cli/termtint/key"
	"github.com/termtint-cli/termtint/palette"
	"github.com/termtint-cli/termtint/preset"
	"github.com/termtint-cli/termtint/profile"
	"github.com/termtint-cli/termtint/scheme"
	"github.com/termtint-cli/termtint/store"
)

const testRoot = "/org/gnome/terminal/legacy/profiles:/"

func testStore() store.Store {
	filesystem.SetMemMapFs()
	viper.Set(key.StoreRoot, testRoot)
	return &store.File{Base: "/db"}
}

func testDocument() string {
	colors := make([]string, palette.Size)
	for i := range colors {
		colors[i] = preset.Builtins[0].Palette[i]
	}
	return scheme.Dump("Monospace 12", "#d8dee9", "#2e3440", colors)
}

func TestApplyDocument(t *testing.T) {
	Convey("applyDocument", t, func() {
		st := testStore()
		path := profile.Path("b1dcc9dd")
		doc := testDocument()

		Convey("Writes all four properties through the store boundary", func() {
			So(applyDocument(st, path, strings.NewReader(doc)), ShouldBeNil)

			font, err := readProperty(st, path, propFont)
			So(err, ShouldBeNil)
			So(font, ShouldEqual, "Monospace 12")

			foreground, err := readProperty(st, path, propForeground)
			So(err, ShouldBeNil)
			So(foreground, ShouldEqual, "#d8dee9")

			Convey("Scalars are stored quoted", func() {
				raw, err := st.Read(path + propFont)
				So(err, ShouldBeNil)
				So(raw, ShouldEqual, "'Monospace 12'")
			})

			Convey("The palette is stored packed and reads back verbatim", func() {
				packed, err := readProperty(st, path, propPalette)
				So(err, ShouldBeNil)
				So(packed, ShouldStartWith, "[")
				So(packed, ShouldEndWith, "]")

				colors, err := palette.DecodePacked(packed)
				So(err, ShouldBeNil)
				So(colors[0], ShouldEqual, preset.Builtins[0].Palette[0])
			})

			Convey("A dump of the profile reproduces the document", func() {
				background, err := readProperty(st, path, propBackground)
				So(err, ShouldBeNil)

				packed, err := readProperty(st, path, propPalette)
				So(err, ShouldBeNil)

				colors, err := palette.DecodePacked(packed)
				So(err, ShouldBeNil)

				So(scheme.Dump(font, foreground, background, colors), ShouldEqual, doc)
			})
		})

		Convey("A document missing a required property aborts before any write", func() {
			broken := strings.Replace(doc, "background-color", "backdrop-color", 1)

			So(applyDocument(st, path, strings.NewReader(broken)), ShouldNotBeNil)

			raw, err := st.Read(path + propFont)
			So(err, ShouldBeNil)
			So(raw, ShouldBeEmpty)
		})
	})
}

func TestApplyPreset(t *testing.T) {
	Convey("applyPreset", t, func() {
		st := testStore()
		path := profile.Path("b1dcc9dd")

		Convey("Writes the scheme but leaves the font alone", func() {
			So(st.Write(path+propFont, store.Quote("Terminus 14")), ShouldBeNil)
			So(applyPreset(st, path, "dracula"), ShouldBeNil)

			font, err := readProperty(st, path, propFont)
			So(err, ShouldBeNil)
			So(font, ShouldEqual, "Terminus 14")

			background, err := readProperty(st, path, propBackground)
			So(err, ShouldBeNil)
			So(background, ShouldEqual, "#282a36")

			packed, err := readProperty(st, path, propPalette)
			So(err, ShouldBeNil)

			colors, err := palette.DecodePacked(packed)
			So(err, ShouldBeNil)
			So(colors[1], ShouldEqual, "#ff5555")
		})

		Convey("Rejects unknown preset names", func() {
			So(applyPreset(st, path, "amber-crt"), ShouldNotBeNil)
		})
	})
}

func TestReadProperty(t *testing.T) {
	Convey("readProperty", t, func() {
		st := testStore()
		path := profile.Path("b1dcc9dd")

		Convey("An absent scalar is a missing property", func() {
			_, err := readProperty(st, path, propFont)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "font")
		})

		Convey("The palette passes through without unquoting", func() {
			So(st.Write(path+propPalette, "[a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p]"), ShouldBeNil)

			packed, err := readProperty(st, path, propPalette)
			So(err, ShouldBeNil)
			So(packed, ShouldEqual, "[a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p]")
		})
	})
}

func TestProfileAndProperty(t *testing.T) {
	Convey("profileAndProperty", t, func() {
		Convey("Splits the optional profile ID off the argument list", func() {
			id, property, err := profileAndProperty([]string{"font"}, 0)
			So(err, ShouldBeNil)
			So(id, ShouldBeEmpty)
			So(property, ShouldEqual, "font")

			id, property, err = profileAndProperty([]string{"b1dcc9dd", "palette"}, 0)
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "b1dcc9dd")
			So(property, ShouldEqual, "palette")

			id, property, err = profileAndProperty([]string{"b1dcc9dd", "font", "Fira Code 11"}, 1)
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "b1dcc9dd")
			So(property, ShouldEqual, "font")
		})

		Convey("Rejects unrecognized properties with a suggestion", func() {
			_, _, err := profileAndProperty([]string{"fonts"}, 0)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "font")
		})
	})
}
