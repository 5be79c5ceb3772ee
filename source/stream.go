package source

import (
	"fmt"
	"net/url"
)

// Stream represents a playable HLS reference.
type Stream struct {
	// Playlist URL handed to the player.
	URL string `json:"url"`
	// HTTP headers the player must send (e.g. Referer).
	Headers map[string]string `json:"headers,omitempty"`
	// Advertised peak bitrate in bits per second, zero when unknown.
	Bandwidth int `json:"bandwidth,omitempty"`
	// Resolution as WIDTHxHEIGHT, empty when unknown.
	Resolution string `json:"resolution,omitempty"`
	FrameRate  float64 `json:"frame_rate,omitempty"`
}

// NewHLSStream wraps a raw playlist URL as a playable reference.
// It fails unless rawURL is an absolute http(s) URL.
func NewHLSStream(rawURL string, headers map[string]string) (*Stream, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse stream url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported stream url scheme %q", u.Scheme)
	}

	if u.Host == "" {
		return nil, fmt.Errorf("stream url %q has no host", rawURL)
	}

	return &Stream{
		URL:     u.String(),
		Headers: copyHeaders(headers),
	}, nil
}

// String returns the resolution or URL for display.
func (s *Stream) String() string {
	if s.Resolution != "" {
		return s.Resolution
	}
	return s.URL
}

// Handle is a named playable stream.
type Handle struct {
	Name   string  `json:"name"`
	Stream *Stream `json:"stream"`
}

func (h *Handle) String() string {
	return h.Name
}

func copyHeaders(headers map[string]string) map[string]string {
	if len(headers) == 0 {
		return nil
	}

	out := make(map[string]string, len(headers))
	for k, v := range headers {
		out[k] = v
	}
	return out
}
