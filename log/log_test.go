package log

import (
	"bytes"
	"testing"

	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFacade(t *testing.T) {
	Convey("Given a log facade routed to a buffer", t, func() {
		var buf bytes.Buffer
		SetupWriter(&buf, false, "info")

		Convey("Info records are written", func() {
			Infof("room %s is %s", "alice", "public")
			So(buf.String(), ShouldContainSubstring, "room alice is public")
		})

		Convey("Debug records are filtered at info level", func() {
			Debug("hidden")
			So(buf.String(), ShouldNotContainSubstring, "hidden")
		})

		Convey("Structured records carry their fields", func() {
			WithFields(WarnLevel, Fields{"identifier": "alice"}, "no stream url")
			So(buf.String(), ShouldContainSubstring, "identifier=alice")
			So(buf.String(), ShouldContainSubstring, "no stream url")
		})

		Convey("An unknown level falls back to info", func() {
			SetupWriter(&buf, true, "loud")
			So(logrus.GetLevel(), ShouldEqual, logrus.InfoLevel)
		})

		Convey("Disabled logging discards records", func() {
			enabled = false
			Error("dropped")
			So(buf.String(), ShouldNotContainSubstring, "dropped")
		})
	})
}
