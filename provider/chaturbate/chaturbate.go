// Package chaturbate resolves chaturbate room URLs into playable HLS streams.
package chaturbate

import (
	"context"
	"errors"
	"net/http"

	"github.com/cbstream/cbstream/constant"
	"github.com/cbstream/cbstream/edge"
	"github.com/cbstream/cbstream/hls"
	"github.com/cbstream/cbstream/log"
	"github.com/cbstream/cbstream/network"
	"github.com/cbstream/cbstream/resolver"
	"github.com/cbstream/cbstream/room"
	"github.com/cbstream/cbstream/source"
	"github.com/samber/lo"
)

const (
	ID   = "chaturbate"
	Name = "Chaturbate"
)

// Match reports whether rawURL is a chaturbate room URL.
func Match(rawURL string) bool {
	return room.Match(rawURL)
}

// Source is the chaturbate site adapter.
type Source struct {
	endpoint  string
	net       *network.Context
	manifests resolver.ManifestResolver
}

// Option configures a Source.
type Option func(*Source)

// WithEndpoint overrides the availability API endpoint.
func WithEndpoint(endpoint string) Option {
	return func(s *Source) {
		s.endpoint = endpoint
	}
}

// WithNetwork sets the HTTP context shared by the API call and manifest fetches.
func WithNetwork(net *network.Context) Option {
	return func(s *Source) {
		if net != nil {
			s.net = net
		}
	}
}

// WithHTTPClient replaces only the HTTP client of the current context. A nil client
// keeps the current one.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Source) {
		if client == nil {
			return
		}
		s.net = &network.Context{Client: client, UserAgent: s.net.UserAgent}
	}
}

// WithUserAgent replaces only the User-Agent of the current context.
func WithUserAgent(userAgent string) Option {
	return func(s *Source) {
		s.net = &network.Context{Client: s.net.Client, UserAgent: userAgent}
	}
}

// WithManifestResolver replaces the HLS playlist resolver.
func WithManifestResolver(m resolver.ManifestResolver) Option {
	return func(s *Source) {
		s.manifests = m
	}
}

// New returns a Source. Without options it talks to the public endpoint with the
// default HTTP client and the application User-Agent.
func New(options ...Option) *Source {
	s := &Source{
		endpoint: room.Endpoint,
		net:      &network.Context{Client: http.DefaultClient, UserAgent: constant.UserAgent},
	}

	for _, option := range options {
		option(s)
	}

	if s.manifests == nil {
		s.manifests = hls.NewResolver(s.net)
	}

	return s
}

func (*Source) ID() string {
	return ID
}

func (*Source) Name() string {
	return Name
}

func (*Source) Match(rawURL string) bool {
	return Match(rawURL)
}

// Streams sends a single availability request for the room at rawURL and resolves
// the answer. Only an unusable URL or a failed request are returned as errors.
func (s *Source) Streams(ctx context.Context, rawURL string) (*source.Result, error) {
	spec, err := room.BuildFor(s.endpoint, rawURL, s.net.UserAgent)
	if err != nil {
		log.Error(err)
		return nil, err
	}

	resp, err := edge.NewClient(s.net.Client).Fetch(ctx, spec)
	switch {
	case errors.Is(err, edge.ErrMalformedResponse):
		log.WithFields(log.ErrorLevel, log.Fields{
			"identifier": spec.Identifier,
			"error":      err.Error(),
		}, "invalid API response")

		return &source.Result{
			Identifier: spec.Identifier,
			Title:      spec.Identifier,
			Author:     spec.Identifier,
			Category:   constant.Category,
			Outcome:    source.OutcomeEmpty,
		}, nil
	case err != nil:
		log.Errorf("edge request for %s failed: %v", spec.Identifier, err)
		return nil, err
	}

	result := resolver.Resolve(ctx, spec.Identifier, s.streamHeaders(rawURL), resp, s.manifests)

	// title and author read back as the room name even when resolution stopped early
	result.Title = lo.CoalesceOrEmpty(result.Title, spec.Identifier)
	result.Author = lo.CoalesceOrEmpty(result.Author, spec.Identifier)
	return result, nil
}

// streamHeaders are the headers the manifest fetch and the player send: the room page
// as Referer and the User-Agent the API was called with.
func (s *Source) streamHeaders(referer string) map[string]string {
	headers := map[string]string{"Referer": referer}
	if s.net.UserAgent != "" {
		headers["User-Agent"] = s.net.UserAgent
	}
	return headers
}
