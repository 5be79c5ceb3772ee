// Package room derives the room identifier from a profile URL and builds the single
// availability request sent to the edge API.
package room

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/cbstream/cbstream/util"
	"github.com/google/uuid"
)

// Endpoint is the edge HLS availability API.
const Endpoint = "https://chaturbate.com/get_edge_hls_url_ajax/"

// ErrInvalidIdentifier is returned when no room name can be extracted from a URL.
var ErrInvalidIdentifier = errors.New("invalid username in URL")

var urlPattern = regexp.MustCompile(`(?i)^https?://(?:\w+\.)?chaturbate\.com/(?P<username>[a-zA-Z0-9_-]+)(?:/.*)?$`)

// Match reports whether rawURL has the shape of a room URL.
func Match(rawURL string) bool {
	return urlPattern.MatchString(rawURL)
}

// Identifier extracts the room name from rawURL.
func Identifier(rawURL string) (string, error) {
	username := util.ReGroups(urlPattern, rawURL)["username"]
	if username == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidIdentifier, rawURL)
	}
	return username, nil
}

// NewToken returns a fresh 32 character uppercase hexadecimal anti-forgery token.
func NewToken() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// RequestSpec describes the availability request for one room.
type RequestSpec struct {
	Endpoint   string
	Method     string
	Identifier string
	Referer    string
	UserAgent  string
	Token      string
	Body       string
}

// Build derives the identifier from rawURL and describes the request against Endpoint.
func Build(rawURL, userAgent string) (*RequestSpec, error) {
	return BuildFor(Endpoint, rawURL, userAgent)
}

// BuildFor is Build against an explicit endpoint.
func BuildFor(endpoint, rawURL, userAgent string) (*RequestSpec, error) {
	identifier, err := Identifier(rawURL)
	if err != nil {
		return nil, err
	}

	return &RequestSpec{
		Endpoint:   endpoint,
		Method:     http.MethodPost,
		Identifier: identifier,
		Referer:    rawURL,
		UserAgent:  userAgent,
		Token:      NewToken(),
		// identifier is restricted to [a-zA-Z0-9_-], nothing to escape
		Body: fmt.Sprintf("room_slug=%s&bandwidth=high", identifier),
	}, nil
}

// Header returns the request headers.
func (s *RequestSpec) Header() http.Header {
	h := make(http.Header)
	h.Set("Content-Type", "application/x-www-form-urlencoded")
	h.Set("X-CSRFToken", s.Token)
	h.Set("X-Requested-With", "XMLHttpRequest")
	h.Set("Referer", s.Referer)
	h.Set("User-Agent", s.UserAgent)
	return h
}

// Cookies returns the cookie pairing the anti-forgery header.
func (s *RequestSpec) Cookies() []*http.Cookie {
	return []*http.Cookie{{Name: "csrftoken", Value: s.Token}}
}

// HTTPRequest materializes the spec into an *http.Request.
func (s *RequestSpec) HTTPRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, s.Method, s.Endpoint, strings.NewReader(s.Body))
	if err != nil {
		return nil, fmt.Errorf("create availability request: %w", err)
	}

	req.Header = s.Header()
	for _, c := range s.Cookies() {
		req.AddCookie(c)
	}
	return req, nil
}
