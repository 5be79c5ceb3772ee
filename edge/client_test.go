package edge

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cbstream/cbstream/room"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFetch(t *testing.T) {
	Convey("Given an edge API server", t, func() {
		var (
			calls    int
			captured *http.Request
			body     string
		)
		status := http.StatusOK
		answer := `{"url":"http://x/m3u8","room_status":"public","success":true}`

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			captured = r
			b, _ := io.ReadAll(r.Body)
			body = string(b)
			w.WriteHeader(status)
			_, _ = io.WriteString(w, answer)
		}))
		defer srv.Close()

		spec, err := room.BuildFor(srv.URL, "https://chaturbate.com/alice/", "agent/1.0")
		So(err, ShouldBeNil)

		client := NewClient(srv.Client())

		Convey("The request is sent once with every header", func() {
			resp, err := client.Fetch(context.Background(), spec)
			So(err, ShouldBeNil)
			So(resp.Live(), ShouldBeTrue)
			So(calls, ShouldEqual, 1)

			So(captured.Method, ShouldEqual, "POST")
			So(body, ShouldEqual, "room_slug=alice&bandwidth=high")
			So(captured.Header.Get("X-CSRFToken"), ShouldEqual, spec.Token)
			So(captured.Header.Get("X-Requested-With"), ShouldEqual, "XMLHttpRequest")
			So(captured.Header.Get("Referer"), ShouldEqual, "https://chaturbate.com/alice/")
			So(captured.Header.Get("User-Agent"), ShouldEqual, "agent/1.0")

			c, err := captured.Cookie("csrftoken")
			So(err, ShouldBeNil)
			So(c.Value, ShouldEqual, spec.Token)
		})

		Convey("A non-success status is a TransportError and is not retried", func() {
			status = http.StatusForbidden
			answer = "blocked"

			_, err := client.Fetch(context.Background(), spec)
			var terr *TransportError
			So(errors.As(err, &terr), ShouldBeTrue)
			So(terr.Status, ShouldEqual, http.StatusForbidden)
			So(terr.Message, ShouldEqual, "blocked")
			So(calls, ShouldEqual, 1)
		})

		Convey("A malformed body is ErrMalformedResponse", func() {
			answer = `<html>cloudflare</html>`

			_, err := client.Fetch(context.Background(), spec)
			So(errors.Is(err, ErrMalformedResponse), ShouldBeTrue)
		})
	})

	Convey("Given an unreachable endpoint", t, func() {
		srv := httptest.NewServer(http.NotFoundHandler())
		endpoint := srv.URL
		srv.Close()

		spec, err := room.BuildFor(endpoint, "https://chaturbate.com/alice/", "")
		So(err, ShouldBeNil)

		_, err = NewClient(nil).Fetch(context.Background(), spec)
		var terr *TransportError
		So(errors.As(err, &terr), ShouldBeTrue)
		So(terr.Status, ShouldEqual, 0)
		So(terr.Unwrap(), ShouldNotBeNil)
	})
}
