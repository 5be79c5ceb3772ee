package resolver

import (
	"context"

	"github.com/cbstream/cbstream/constant"
	"github.com/cbstream/cbstream/edge"
	"github.com/cbstream/cbstream/log"
	"github.com/cbstream/cbstream/source"
)

// ManifestResolver expands a multivariant playlist into named handles.
type ManifestResolver interface {
	Variants(ctx context.Context, manifestURL string, headers map[string]string) ([]*source.Handle, error)
}

// ManifestResolverFunc adapts a function to ManifestResolver.
type ManifestResolverFunc func(ctx context.Context, manifestURL string, headers map[string]string) ([]*source.Handle, error)

func (f ManifestResolverFunc) Variants(ctx context.Context, manifestURL string, headers map[string]string) ([]*source.Handle, error) {
	return f(ctx, manifestURL, headers)
}

// Resolve turns an availability answer for identifier into a Result. It never fails:
// every condition short of a playable stream is logged and yields no handles.
//
// Title and author are set to the identifier before the availability gate, so they
// are filled in for offline and private rooms too. They stay empty only when the
// answer carries no manifest URL at all.
//
// headers are sent with the manifest fetch and attached to every resolved stream,
// the "default" fallback included.
func Resolve(ctx context.Context, identifier string, headers map[string]string, resp *edge.Response, manifests ManifestResolver) *source.Result {
	result := &source.Result{
		Identifier: identifier,
		Category:   constant.Category,
		Outcome:    source.OutcomeEmpty,
	}

	if resp == nil || resp.URL == "" {
		log.WithFields(log.ErrorLevel, log.Fields{"identifier": identifier}, "invalid API response or no stream URL")
		return result
	}

	result.Status = resp.RoomStatus
	log.Infof("stream status: %s", resp.RoomStatus)

	// the API never returns a display name
	result.Title = identifier
	result.Author = identifier

	// url is known to be set here, so Live only checks success and status
	if !resp.Live() {
		log.WithFields(log.InfoLevel, log.Fields{
			"identifier": identifier,
			"status":     resp.RoomStatus,
			"success":    bool(resp.Success),
		}, "stream offline or private")
		return result
	}

	variants, err := manifests.Variants(ctx, resp.URL, headers)
	if err != nil {
		log.Errorf("failed to load stream for %s: %v", identifier, err)
	} else if len(variants) == 0 {
		log.Warnf("no valid streams found in playlist for %s", identifier)
	}

	outcome := Decide(resp.URL, headers, variants, err)
	if outcome.Kind == Empty {
		log.Errorf("failed to load fallback stream for %s: %v", identifier, outcome.Err)
	}

	result.Outcome = outcome.Kind.String()
	result.Handles = outcome.Handles
	return result
}
