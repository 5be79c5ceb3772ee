package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestReadIfExists(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()

		Convey("A missing file reports ok=false without error", func() {
			data, ok, err := ReadIfExists("/nope/.env")
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
			So(data, ShouldBeNil)
		})

		Convey("An existing file is returned", func() {
			So(API().WriteFile("/cfg/.env", []byte("A=1\n"), 0o644), ShouldBeNil)
			data, ok, err := ReadIfExists("/cfg/.env")
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(string(data), ShouldEqual, "A=1\n")
		})
	})
}
