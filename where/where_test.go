package where

import (
	"path/filepath"
	"testing"

	"github.com/cbstream/cbstream/constant"
	"github.com/cbstream/cbstream/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honours the override variable", func() {
			t.Setenv(EnvConfigPath, "/override/cbstream")
			So(Config(), ShouldEqual, "/override/cbstream")
			So(ConfigFile(), ShouldEqual, filepath.Join("/override/cbstream", constant.App+".toml"))
			So(DotEnv(), ShouldEqual, filepath.Join("/override/cbstream", ".env"))
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Temp()", func() {
			path := Temp()
			So(filepath.Base(path), ShouldEqual, constant.App)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})
	})
}
