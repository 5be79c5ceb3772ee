package edge

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDecode(t *testing.T) {
	Convey("Decode", t, func() {
		Convey("Accepts a boolean success flag", func() {
			r, err := Decode([]byte(`{"url":"http://x/m3u8","room_status":"public","success":true}`))
			So(err, ShouldBeNil)
			So(r.URL, ShouldEqual, "http://x/m3u8")
			So(r.RoomStatus, ShouldEqual, "public")
			So(bool(r.Success), ShouldBeTrue)
			So(r.Live(), ShouldBeTrue)
		})

		Convey("Accepts an integer success flag", func() {
			r, err := Decode([]byte(`{"url":"http://x/m3u8","room_status":"public","success":1}`))
			So(err, ShouldBeNil)
			So(bool(r.Success), ShouldBeTrue)

			r, err = Decode([]byte(`{"url":"http://x/m3u8","room_status":"public","success":0}`))
			So(err, ShouldBeNil)
			So(bool(r.Success), ShouldBeFalse)
		})

		Convey("Accepts integers wider than int64", func() {
			r, err := Decode([]byte(`{"url":"http://x/m3u8","room_status":"public","success":99999999999999999999}`))
			So(err, ShouldBeNil)
			So(bool(r.Success), ShouldBeTrue)

			r, err = Decode([]byte(`{"url":"http://x/m3u8","room_status":"public","success":-99999999999999999999}`))
			So(err, ShouldBeNil)
			So(bool(r.Success), ShouldBeTrue)
		})

		Convey("Maps null strings to empty", func() {
			r, err := Decode([]byte(`{"url":null,"room_status":null,"success":false}`))
			So(err, ShouldBeNil)
			So(r.URL, ShouldBeEmpty)
			So(r.RoomStatus, ShouldBeEmpty)
			So(r.Live(), ShouldBeFalse)
		})

		Convey("Ignores unknown keys", func() {
			_, err := Decode([]byte(`{"url":"u","room_status":"public","success":true,"hidden_message":""}`))
			So(err, ShouldBeNil)
		})

		Convey("Rejects schema violations", func() {
			for _, body := range []string{
				``,
				`null`,
				`[]`,
				`"text"`,
				`{"room_status":"public","success":true}`,
				`{"url":"u","success":true}`,
				`{"url":"u","room_status":"public"}`,
				`{"url":5,"room_status":"public","success":true}`,
				`{"url":"u","room_status":false,"success":true}`,
				`{"url":"u","room_status":"public","success":"yes"}`,
				`{"url":"u","room_status":"public","success":1.5}`,
				`{"url":"u","room_status":"public","success":null}`,
			} {
				_, err := Decode([]byte(body))
				So(errors.Is(err, ErrMalformedResponse), ShouldBeTrue)
			}
		})
	})
}

func TestLive(t *testing.T) {
	Convey("Live gate", t, func() {
		So((&Response{URL: "u", RoomStatus: "public", Success: true}).Live(), ShouldBeTrue)
		So((&Response{URL: "u", RoomStatus: "private", Success: true}).Live(), ShouldBeFalse)
		So((&Response{URL: "u", RoomStatus: "public", Success: false}).Live(), ShouldBeFalse)
		So((&Response{URL: "", RoomStatus: "public", Success: true}).Live(), ShouldBeFalse)

		var nilResp *Response
		So(nilResp.Live(), ShouldBeFalse)
	})
}
