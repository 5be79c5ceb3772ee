// Package source defines the domain models and interfaces for live room stream resolution.
package source

import "context"

// Source defines the capabilities of a site adapter.
type Source interface {
	// Name returns the display name of the site.
	Name() string

	// ID returns the unique identifier of the source.
	ID() string

	// Match reports whether rawURL belongs to this site.
	Match(rawURL string) bool

	// Streams resolves rawURL into its playable streams. A room that is offline,
	// private or temporarily broken yields a Result without handles, not an error.
	Streams(ctx context.Context, rawURL string) (*Result, error)
}
