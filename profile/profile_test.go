package profile

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/termtint-cli/termtint/filesystem"
	"github.com/termtint-cli/termtint/key"
	"github.com/termtint-cli/termtint/store"
)

const testRoot = "/org/gnome/terminal/legacy/profiles:/"

// seed populates an in-memory file store with the given profiles.
func seed(ids ...string) store.Store {
	filesystem.SetMemMapFs()
	viper.Set(key.StoreRoot, testRoot)

	st := &store.File{Base: "/db"}
	for _, id := range ids {
		if err := st.Write(testRoot+":"+id+"/visible-name", store.Quote("Profile "+id)); err != nil {
			panic(err)
		}
	}
	return st
}

func TestPath(t *testing.T) {
	Convey("Path", t, func() {
		viper.Set(key.StoreRoot, testRoot)
		So(Path("b1dcc9dd"), ShouldEqual, testRoot+":b1dcc9dd/")
	})
}

func TestList(t *testing.T) {
	Convey("List", t, func() {
		Convey("Strips the store's entry decorations", func() {
			st := seed("aaa", "bbb")
			ids, err := List(st)
			So(err, ShouldBeNil)
			So(ids, ShouldResemble, []string{"aaa", "bbb"})
		})

		Convey("Skips plain keys at the root", func() {
			st := seed("aaa")
			So(st.Write(testRoot+"default", store.Quote("aaa")), ShouldBeNil)

			ids, err := List(st)
			So(err, ShouldBeNil)
			So(ids, ShouldResemble, []string{"aaa"})
		})

		Convey("Returns nothing for an empty database", func() {
			st := seed()
			ids, err := List(st)
			So(err, ShouldBeNil)
			So(ids, ShouldBeEmpty)
		})
	})
}

func TestVisibleName(t *testing.T) {
	Convey("VisibleName", t, func() {
		st := seed("aaa")

		Convey("Unquotes the stored name", func() {
			So(VisibleName(st, "aaa"), ShouldEqual, "Profile aaa")
		})

		Convey("Degrades to a placeholder when absent", func() {
			So(VisibleName(st, "ghost"), ShouldEqual, "(unnamed)")
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Resolve", t, func() {
		Convey("An explicit ID resolves without existence validation", func() {
			st := seed()
			path, err := Resolve(st, "nonexistent")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, testRoot+":nonexistent/")
		})

		Convey("Zero profiles is an error", func() {
			st := seed()
			_, err := Resolve(st, "")
			So(err, ShouldEqual, ErrNoProfiles)
		})

		Convey("A single profile is auto-selected without prompting", func() {
			st := seed("only")

			asked := false
			restore := choose
			choose = func(store.Store, []string) (int, error) {
				asked = true
				return 1, nil
			}
			defer func() { choose = restore }()

			path, err := Resolve(st, "")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, testRoot+":only/")
			So(asked, ShouldBeFalse)
		})

		Convey("Multiple profiles prompt for a 1-based index", func() {
			st := seed("aaa", "bbb", "ccc")

			restore := choose
			choose = func(_ store.Store, ids []string) (int, error) {
				So(ids, ShouldHaveLength, 3)
				return 2, nil
			}
			defer func() { choose = restore }()

			path, err := Resolve(st, "")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, testRoot+":bbb/")
		})
	})
}

func TestValidateChoice(t *testing.T) {
	Convey("validateChoice", t, func() {
		validate := validateChoice(3)

		Convey("Rejects out-of-range and non-numeric input, so the prompt re-asks", func() {
			So(validate("0"), ShouldNotBeNil)
			So(validate("4"), ShouldNotBeNil)
			So(validate("-1"), ShouldNotBeNil)
			So(validate("two"), ShouldNotBeNil)
			So(validate(""), ShouldNotBeNil)
		})

		Convey("Accepts every valid index", func() {
			So(validate("1"), ShouldBeNil)
			So(validate("2"), ShouldBeNil)
			So(validate("3"), ShouldBeNil)
			So(validate(" 2 "), ShouldBeNil)
		})
	})
}
