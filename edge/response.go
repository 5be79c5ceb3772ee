// Package edge talks to the edge HLS availability API and validates its answers.
package edge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformedResponse is returned when the API answer does not match the expected schema.
var ErrMalformedResponse = errors.New("malformed edge response")

// PublicStatus is the only room status that can be played.
const PublicStatus = "public"

// Flag is the API's success marker, sent either as a boolean or an integer.
type Flag bool

// UnmarshalJSON accepts true/false and integral numbers; anything else is rejected.
func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch string(data) {
	case "true":
		*f = true
		return nil
	case "false":
		*f = false
		return nil
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		// integral but wider than int64, so never zero
		*f = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("success must be a boolean or an integer, got %s", data)
	}
	*f = n != 0
	return nil
}

// Response is the validated availability answer. Null strings decode to "".
type Response struct {
	URL        string `json:"url"`
	RoomStatus string `json:"room_status"`
	Success    Flag   `json:"success"`
}

// Live reports whether the room can be resolved into streams: the call succeeded, the
// room is public and a manifest URL was handed out.
func (r *Response) Live() bool {
	return r != nil && bool(r.Success) && r.RoomStatus == PublicStatus && r.URL != ""
}

// Decode validates body against the response schema:
//
//	{"url": string|null, "room_status": string|null, "success": int|bool}
func Decode(body []byte) (*Response, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: not an object", ErrMalformedResponse)
	}

	var resp Response
	var err error

	if resp.URL, err = nullableString(raw, "url"); err != nil {
		return nil, err
	}

	if resp.RoomStatus, err = nullableString(raw, "room_status"); err != nil {
		return nil, err
	}

	success, ok := raw["success"]
	if !ok {
		return nil, fmt.Errorf("%w: missing key success", ErrMalformedResponse)
	}
	if err := json.Unmarshal(success, &resp.Success); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return &resp, nil
}

func nullableString(raw map[string]json.RawMessage, key string) (string, error) {
	value, ok := raw[key]
	if !ok {
		return "", fmt.Errorf("%w: missing key %s", ErrMalformedResponse, key)
	}

	if string(bytes.TrimSpace(value)) == "null" {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", fmt.Errorf("%w: %s must be a string or null", ErrMalformedResponse, key)
	}
	return s, nil
}
