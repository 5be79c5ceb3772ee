// Package resolver decides, from a validated availability answer, which playable
// streams a room has.
package resolver

import (
	"github.com/cbstream/cbstream/constant"
	"github.com/cbstream/cbstream/source"
)

// Kind tells how an Outcome was reached.
type Kind int

const (
	// Empty means nothing can be played.
	Empty Kind = iota
	// Variants means the manifest listed named variants.
	Variants
	// Fallback means the raw manifest was wrapped as a single "default" stream.
	Fallback
)

func (k Kind) String() string {
	switch k {
	case Variants:
		return source.OutcomeVariants
	case Fallback:
		return source.OutcomeFallback
	default:
		return source.OutcomeEmpty
	}
}

// Outcome is the result of the manifest resolution step.
type Outcome struct {
	Kind    Kind
	Handles []*source.Handle
	// Err is the collaborator or fallback failure that led here, if any.
	Err error
}

// Decide selects the handles for a live room from the manifest collaborator's outcome.
//
// Variants are returned as given, in the collaborator's order. An empty variant list
// and a collaborator failure are handled alike: the raw manifest URL is wrapped as a
// single "default" stream. If even that wrap fails the outcome is Empty.
func Decide(manifestURL string, headers map[string]string, variants []*source.Handle, err error) Outcome {
	if err == nil && len(variants) > 0 {
		return Outcome{Kind: Variants, Handles: variants}
	}

	stream, wrapErr := source.NewHLSStream(manifestURL, headers)
	if wrapErr != nil {
		return Outcome{Kind: Empty, Err: wrapErr}
	}

	return Outcome{
		Kind:    Fallback,
		Handles: []*source.Handle{{Name: constant.DefaultStreamName, Stream: stream}},
		Err:     err,
	}
}
