package room

import (
	"context"
	"errors"
	"io"
	"regexp"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

var tokenPattern = regexp.MustCompile(`^[0-9A-F]{32}$`)

func TestIdentifier(t *testing.T) {
	Convey("Identifier", t, func() {
		Convey("Extracts the first path segment", func() {
			cases := map[string]string{
				"https://chaturbate.com/alice/":             "alice",
				"https://chaturbate.com/alice":              "alice",
				"http://chaturbate.com/bob_99":              "bob_99",
				"https://en.chaturbate.com/carol-x/":        "carol-x",
				"HTTPS://WWW.CHATURBATE.COM/Dave/":          "Dave",
				"https://chaturbate.com/erin/extra/path?q=": "erin",
			}
			for in, want := range cases {
				got, err := Identifier(in)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, want)
				So(Match(in), ShouldBeTrue)
			}
		})

		Convey("Fails without an identifier segment", func() {
			for _, in := range []string{
				"https://chaturbate.com/",
				"https://chaturbate.com",
				"https://chaturbate.com/bad name/",
				"https://example.com/alice/",
				"",
			} {
				_, err := Identifier(in)
				So(errors.Is(err, ErrInvalidIdentifier), ShouldBeTrue)
				So(Match(in), ShouldBeFalse)
			}
		})
	})
}

func TestNewToken(t *testing.T) {
	Convey("NewToken", t, func() {
		Convey("Is 32 uppercase hex characters", func() {
			So(tokenPattern.MatchString(NewToken()), ShouldBeTrue)
		})

		Convey("Never repeats across 1000 calls", func() {
			seen := make(map[string]struct{}, 1000)
			for i := 0; i < 1000; i++ {
				seen[NewToken()] = struct{}{}
			}
			So(len(seen), ShouldEqual, 1000)
		})
	})
}

func TestBuild(t *testing.T) {
	Convey("Given a room URL", t, func() {
		rawURL := "https://chaturbate.com/alice/"

		spec, err := Build(rawURL, "agent/1.0")
		So(err, ShouldBeNil)

		Convey("The request targets the edge API with POST", func() {
			So(spec.Endpoint, ShouldEqual, Endpoint)
			So(spec.Method, ShouldEqual, "POST")
		})

		Convey("The body embeds the identifier", func() {
			So(spec.Identifier, ShouldEqual, "alice")
			So(spec.Body, ShouldEqual, "room_slug=alice&bandwidth=high")
		})

		Convey("Headers carry the token, referer and inherited user agent", func() {
			h := spec.Header()
			So(h.Get("Content-Type"), ShouldEqual, "application/x-www-form-urlencoded")
			So(h.Get("X-Requested-With"), ShouldEqual, "XMLHttpRequest")
			So(h.Get("X-CSRFToken"), ShouldEqual, spec.Token)
			So(h.Get("Referer"), ShouldEqual, rawURL)
			So(h.Get("User-Agent"), ShouldEqual, "agent/1.0")
			So(tokenPattern.MatchString(spec.Token), ShouldBeTrue)
		})

		Convey("The cookie pairs the header token", func() {
			cookies := spec.Cookies()
			So(cookies, ShouldHaveLength, 1)
			So(cookies[0].Name, ShouldEqual, "csrftoken")
			So(cookies[0].Value, ShouldEqual, spec.Token)
		})

		Convey("Each build gets a fresh token", func() {
			again, err := Build(rawURL, "agent/1.0")
			So(err, ShouldBeNil)
			So(again.Token, ShouldNotEqual, spec.Token)
		})

		Convey("HTTPRequest materializes everything", func() {
			req, err := spec.HTTPRequest(context.Background())
			So(err, ShouldBeNil)
			So(req.Method, ShouldEqual, "POST")
			So(req.URL.String(), ShouldEqual, Endpoint)

			c, err := req.Cookie("csrftoken")
			So(err, ShouldBeNil)
			So(c.Value, ShouldEqual, spec.Token)

			body, _ := io.ReadAll(req.Body)
			So(string(body), ShouldEqual, "room_slug=alice&bandwidth=high")
		})
	})

	Convey("Given a URL without identifier", t, func() {
		spec, err := BuildFor("http://127.0.0.1:1/never", "https://chaturbate.com/", "agent")
		So(spec, ShouldBeNil)
		So(errors.Is(err, ErrInvalidIdentifier), ShouldBeTrue)
	})

	Convey("For all valid identifiers the body carries them verbatim", t, func() {
		for _, id := range []string{"a", "A1", "under_score", "dash-ed", "MiXeD_09-z"} {
			spec, err := Build("https://chaturbate.com/"+id, "")
			So(err, ShouldBeNil)
			So(spec.Body, ShouldEqual, "room_slug="+id+"&bandwidth=high")
		}
	})
}
