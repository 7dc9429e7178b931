package where

import (
	"path/filepath"
	"testing"

	"github.com/reelroll-cli/reelroll/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			So(lo.Must(filesystem.API().IsDir(Logs())), ShouldBeTrue)
		})

		Convey("Cache files live in the cache directory", func() {
			So(filepath.Dir(Providers()), ShouldEqual, Cache())
			So(filepath.Dir(Queries()), ShouldEqual, Cache())
		})
	})

	Convey("Given a config path override", t, func() {
		t.Setenv(EnvConfigPath, "/custom/reelroll")

		Convey("Config() should use it", func() {
			So(Config(), ShouldEqual, "/custom/reelroll")
			So(lo.Must(filesystem.API().IsDir("/custom/reelroll")), ShouldBeTrue)
		})
	})
}
