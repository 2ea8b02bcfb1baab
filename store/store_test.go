package store

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/termtint-cli/termtint/filesystem"
	"github.com/termtint-cli/termtint/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuote(t *testing.T) {
	Convey("Quote", t, func() {
		Convey("Wraps a plain value", func() {
			So(Quote("red"), ShouldEqual, "'red'")
		})

		Convey("Escapes embedded quotes and backslashes", func() {
			So(Quote("it's"), ShouldEqual, `'it\'s'`)
			So(Quote(`a\b`), ShouldEqual, `'a\\b'`)
		})

		Convey("Wraps the empty value", func() {
			So(Quote(""), ShouldEqual, "''")
		})
	})
}

func TestUnquote(t *testing.T) {
	Convey("Unquote", t, func() {
		Convey("Strips well-formed wrapping", func() {
			v, err := Unquote("'Monospace 12'")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "Monospace 12")
		})

		Convey("Reverses escaping", func() {
			v, err := Unquote(`'it\'s'`)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "it's")
		})

		Convey("Rejects values that are not single-quoted scalars", func() {
			for _, bad := range []string{"", "red", "'red", "red'", "'a'b'", `'a\'`} {
				_, err := Unquote(bad)
				So(err, ShouldNotBeNil)
			}
		})

		Convey("Round-trips through Quote", func() {
			for _, s := range []string{"'red'", `'it\'s'`, "''", `'C:\\fonts'`} {
				raw, err := Unquote(s)
				So(err, ShouldBeNil)
				So(Quote(raw), ShouldEqual, s)
			}
		})
	})
}

func TestFileStore(t *testing.T) {
	Convey("File store", t, func() {
		filesystem.SetMemMapFs()
		st := &File{Base: "/store"}

		Convey("Reads an absent key as empty", func() {
			v, err := st.Read("/profiles:/:b1dcc9dd/font")
			So(err, ShouldBeNil)
			So(v, ShouldBeEmpty)
		})

		Convey("Round-trips a written value", func() {
			So(st.Write("/profiles:/:b1dcc9dd/font", "'Monospace 12'"), ShouldBeNil)

			v, err := st.Read("/profiles:/:b1dcc9dd/font")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "'Monospace 12'")
		})

		Convey("Lists directories with a trailing slash", func() {
			So(st.Write("/profiles:/:aaa/visible-name", "'One'"), ShouldBeNil)
			So(st.Write("/profiles:/:bbb/visible-name", "'Two'"), ShouldBeNil)
			So(st.Write("/profiles:/default", "'aaa'"), ShouldBeNil)

			entries, err := st.List("/profiles:/")
			So(err, ShouldBeNil)
			So(entries, ShouldContain, ":aaa/")
			So(entries, ShouldContain, ":bbb/")
			So(entries, ShouldContain, "default")
		})

		Convey("Lists an absent directory as empty", func() {
			entries, err := st.List("/nowhere/")
			So(err, ShouldBeNil)
			So(entries, ShouldBeEmpty)
		})
	})
}

func TestActive(t *testing.T) {
	Convey("Active backend selection", t, func() {
		Convey("Defaults to dconf", func() {
			viper.Set(key.StoreBackend, "dconf")
			st, err := Active()
			So(err, ShouldBeNil)
			So(st, ShouldHaveSameTypeAs, Dconf{})
		})

		Convey("Selects the file backend", func() {
			viper.Set(key.StoreBackend, "file")
			st, err := Active()
			So(err, ShouldBeNil)
			So(st, ShouldHaveSameTypeAs, &File{})
		})

		Convey("Rejects unknown backends", func() {
			viper.Set(key.StoreBackend, "registry")
			_, err := Active()
			So(err, ShouldNotBeNil)
		})
	})
}
