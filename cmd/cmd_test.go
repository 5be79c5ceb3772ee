package cmd

import (
	"testing"

	"github.com/cbstream/cbstream/config"
	"github.com/cbstream/cbstream/key"
	"github.com/cbstream/cbstream/source"
	"github.com/cbstream/cbstream/util"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func TestParseValue(t *testing.T) {
	Convey("Given config fields", t, func() {
		Convey("Integers must be non-negative", func() {
			v, err := parseValue(config.Default[key.NetworkTimeout], "15")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 15)

			_, err = parseValue(config.Default[key.NetworkTimeout], "-1")
			So(err, ShouldNotBeNil)
		})

		Convey("Booleans are parsed", func() {
			v, err := parseValue(config.Default[key.PlayerDetach], "true")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)

			_, err = parseValue(config.Default[key.PlayerDetach], "maybe")
			So(err, ShouldNotBeNil)
		})

		Convey("Strings are kept as is", func() {
			v, err := parseValue(config.Default[key.StreamsDefault], "720p")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "720p")
		})
	})

	Convey("Unknown keys suggest the closest one", t, func() {
		err := errUnknownKey("streams.defalt")
		So(err.Error(), ShouldContainSubstring, "streams.default")
	})
}

func TestPickWith(t *testing.T) {
	Convey("Given handles", t, func() {
		handles := []*source.Handle{
			{Name: "480p", Stream: &source.Stream{URL: "http://x/480", Bandwidth: 1000}},
			{Name: "720p", Stream: &source.Stream{URL: "http://x/720", Bandwidth: 3000}},
		}

		Convey("An empty selector means best", func() {
			h, err := pickWith("", handles)
			So(err, ShouldBeNil)
			So(h.Name, ShouldEqual, "720p")
		})

		Convey("A name selects that stream", func() {
			h, err := pickWith("480p", handles)
			So(err, ShouldBeNil)
			So(h.Name, ShouldEqual, "480p")
		})
	})
}

func TestPickStream(t *testing.T) {
	Convey("Given a room with two streams and no terminal", t, func() {
		interactive = func() bool { return false }
		defer func() { interactive = util.IsInteractive }()

		previous := viper.GetString(key.StreamsDefault)
		defer viper.Set(key.StreamsDefault, previous)

		result := &source.Result{
			Title: "alice",
			Handles: []*source.Handle{
				{Name: "480p", Stream: &source.Stream{URL: "http://x/480", Bandwidth: 1000}},
				{Name: "720p", Stream: &source.Stream{URL: "http://x/720", Bandwidth: 3000}},
			},
		}

		cmd := &cobra.Command{}
		cmd.Flags().StringP("stream", "s", "", "")

		Convey("The stream flag wins over the setting", func() {
			viper.Set(key.StreamsDefault, "720p")
			So(cmd.Flags().Set("stream", "480p"), ShouldBeNil)

			h, err := pickStream(cmd, result)
			So(err, ShouldBeNil)
			So(h.Name, ShouldEqual, "480p")
		})

		Convey("An unknown flag value is an error", func() {
			So(cmd.Flags().Set("stream", "1080p"), ShouldBeNil)

			_, err := pickStream(cmd, result)
			So(err, ShouldNotBeNil)
		})

		Convey("Without the flag the setting is used", func() {
			viper.Set(key.StreamsDefault, "480p")

			h, err := pickStream(cmd, result)
			So(err, ShouldBeNil)
			So(h.Name, ShouldEqual, "480p")
		})

		Convey("A setting that matches nothing falls back to the first stream", func() {
			viper.Set(key.StreamsDefault, "1080p")

			h, err := pickStream(cmd, result)
			So(err, ShouldBeNil)
			So(h.Name, ShouldEqual, "480p")
		})

		Convey("An empty setting means best", func() {
			viper.Set(key.StreamsDefault, "")

			h, err := pickStream(cmd, result)
			So(err, ShouldBeNil)
			So(h.Name, ShouldEqual, "720p")
		})
	})
}

func TestSourceFor(t *testing.T) {
	Convey("Room URLs map to a source", t, func() {
		src, err := sourceFor("https://chaturbate.com/alice/")
		So(err, ShouldBeNil)
		So(src.ID(), ShouldEqual, "chaturbate")

		_, err = sourceFor("https://example.com/alice/")
		So(err, ShouldNotBeNil)
	})
}
