package provider

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGet(t *testing.T) {
	Convey("When trying to get an invalid provider", t, func() {
		_, ok := Get("kek")
		Convey("Then ok should be false", func() {
			So(ok, ShouldBeFalse)
		})
	})

	Convey("When getting the chaturbate provider", t, func() {
		byName, ok := Get("Chaturbate")
		So(ok, ShouldBeTrue)

		byID, ok := Get("chaturbate")
		So(ok, ShouldBeTrue)
		So(byID, ShouldResemble, byName)
		So(byName.String(), ShouldEqual, "Chaturbate")
	})
}

func TestForURL(t *testing.T) {
	Convey("Given room URLs", t, func() {
		Convey("A matching URL selects chaturbate", func() {
			p, ok := ForURL("https://chaturbate.com/alice/")
			So(ok, ShouldBeTrue)
			So(p.ID, ShouldEqual, "chaturbate")

			p, ok = ForURL("HTTPS://M.CHATURBATE.COM/bob")
			So(ok, ShouldBeTrue)
			So(p.ID, ShouldEqual, "chaturbate")
		})

		Convey("Other sites are not handled", func() {
			_, ok := ForURL("https://example.com/alice")
			So(ok, ShouldBeFalse)

			_, ok = ForURL("https://chaturbate.com/")
			So(ok, ShouldBeFalse)
		})

		Convey("The created source reports the same identity", func() {
			p, _ := ForURL("https://chaturbate.com/alice/")
			src, err := p.CreateSource()
			So(err, ShouldBeNil)
			So(src.ID(), ShouldEqual, p.ID)
			So(src.Name(), ShouldEqual, p.Name)
			So(src.Match("https://chaturbate.com/alice/"), ShouldBeTrue)
		})
	})
}
