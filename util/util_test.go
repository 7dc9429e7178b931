package util

import (
	"path/filepath"
	"testing"

	"github.com/reelroll-cli/reelroll/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "movie", "movies"), ShouldEqual, "1 movie")
		So(Quantify(0, "movie", "movies"), ShouldEqual, "0 movies")
		So(Quantify(20, "movie", "movies"), ShouldEqual, "20 movies")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("cache"), ShouldEqual, "Cache")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestAbs(t *testing.T) {
	Convey("Abs", t, func() {
		So(Abs(-3), ShouldEqual, 3)
		So(Abs(4), ShouldEqual, 4)
		So(Abs(-1.5), ShouldEqual, 1.5)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a directory with a file", t, func() {
		dir := filepath.Join(t.TempDir(), "cache")
		file := filepath.Join(dir, "providers.json")
		So(filesystem.API().MkdirAll(dir, 0755), ShouldBeNil)
		So(filesystem.API().WriteFile(file, []byte("{}"), 0644), ShouldBeNil)

		Convey("Delete should remove a single file", func() {
			So(Delete(file), ShouldBeNil)
			exists, _ := filesystem.API().Exists(file)
			So(exists, ShouldBeFalse)
		})

		Convey("Delete should remove the whole tree", func() {
			So(Delete(dir), ShouldBeNil)
			exists, _ := filesystem.API().DirExists(dir)
			So(exists, ShouldBeFalse)
		})

		Convey("Delete should fail on missing paths", func() {
			So(Delete(filepath.Join(dir, "missing")), ShouldNotBeNil)
		})
	})
}

func TestStack(t *testing.T) {
	Convey("Given a stack", t, func() {
		var s Stack[int]

		_, ok := s.Pop()
		So(ok, ShouldBeFalse)

		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)

		top, ok := s.Peek()
		So(ok, ShouldBeTrue)
		So(top, ShouldEqual, 2)

		top, _ = s.Pop()
		So(top, ShouldEqual, 2)
		top, _ = s.Pop()
		So(top, ShouldEqual, 1)
		So(s.Len(), ShouldEqual, 0)
	})
}
