package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestBackend(t *testing.T) {
	Convey("Given the backend", t, func() {
		Reset(SetMemMapFs)

		Convey("SetOsFs selects the os", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("SetMemMapFs selects memory", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})

		Convey("Use swaps in any afero fs", func() {
			Use(afero.NewReadOnlyFs(afero.NewMemMapFs()))
			So(API().WriteFile("/providers.json", []byte("{}"), 0644), ShouldNotBeNil)
		})
	})
}

func TestGache(t *testing.T) {
	Convey("Given the gache adapter", t, func() {
		SetMemMapFs()
		fs := Gache{}

		Convey("It writes through the active backend", func() {
			So(fs.MkdirAll("/cache", os.ModePerm), ShouldBeNil)

			file, err := fs.OpenFile("/cache/queries.json", os.O_CREATE|os.O_RDWR, 0644)
			So(err, ShouldBeNil)
			_, err = file.Write([]byte("{}"))
			So(err, ShouldBeNil)
			So(file.Close(), ShouldBeNil)

			data, err := API().ReadFile("/cache/queries.json")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "{}")
		})
	})
}
