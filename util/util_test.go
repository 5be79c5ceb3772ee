package util

import (
	"errors"
	"regexp"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "stream", "streams"), ShouldEqual, "1 stream")
		So(Quantify(3, "stream", "streams"), ShouldEqual, "3 streams")
		So(Quantify(0, "stream", "streams"), ShouldEqual, "0 streams")
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`(?P<first>\w+)\s(?P<last>\w+)`)

		Convey("Maps named groups", func() {
			groups := ReGroups(re, "John Doe")
			So(groups["first"], ShouldEqual, "John")
			So(groups["last"], ShouldEqual, "Doe")
		})

		Convey("Returns an empty map without a match", func() {
			So(ReGroups(re, "single"), ShouldBeEmpty)
		})
	})
}

func TestIgnore(t *testing.T) {
	Convey("Ignore swallows the error", t, func() {
		called := false
		Ignore(func() error {
			called = true
			return errors.New("boom")
		})
		So(called, ShouldBeTrue)
	})
}

func TestMax(t *testing.T) {
	Convey("Max", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Max("480p", "720p"), ShouldEqual, "720p")
		So(Max[int](), ShouldEqual, 0)
	})
}
