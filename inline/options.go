// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cbstream/cbstream/constant"
	"github.com/cbstream/cbstream/source"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// StreamPicker selects one handle from a non-empty list.
type StreamPicker func([]*source.Handle) (*source.Handle, error)

type Options struct {
	Out    io.Writer
	Source source.Source
	URL    string
	Json   bool
	Picker mo.Option[StreamPicker]
}

// ParseStreamPicker parses a stream selector:
//
//	best  - highest bandwidth, the first stream when none is known
//	worst - lowest known bandwidth, the first stream when none is known
//	name  - exact stream name, otherwise the closest fuzzy match
func ParseStreamPicker(value string) (StreamPicker, error) {
	value = strings.TrimSpace(value)

	switch value {
	case "":
		return nil, errors.New("empty stream selector")
	case constant.StreamBest:
		return func(handles []*source.Handle) (*source.Handle, error) {
			return lo.MaxBy(handles, func(a, b *source.Handle) bool {
				return bandwidth(a) > bandwidth(b)
			}), nil
		}, nil
	case constant.StreamWorst:
		return func(handles []*source.Handle) (*source.Handle, error) {
			known := lo.Filter(handles, func(h *source.Handle, _ int) bool {
				return bandwidth(h) > 0
			})
			if len(known) == 0 {
				return handles[0], nil
			}
			return lo.MinBy(known, func(a, b *source.Handle) bool {
				return bandwidth(a) < bandwidth(b)
			}), nil
		}, nil
	default:
		return func(handles []*source.Handle) (*source.Handle, error) {
			return byName(handles, value)
		}, nil
	}
}

func byName(handles []*source.Handle, name string) (*source.Handle, error) {
	if h, ok := lo.Find(handles, func(h *source.Handle) bool {
		return strings.EqualFold(h.Name, name)
	}); ok {
		return h, nil
	}

	names := lo.Map(handles, func(h *source.Handle, _ int) string {
		return h.Name
	})

	ranks := fuzzy.RankFindNormalizedFold(name, names)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return handles[ranks[0].OriginalIndex], nil
	}

	closest := lo.MinBy(names, func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	return nil, fmt.Errorf("stream %s not found, did you mean %s?", name, closest)
}

func bandwidth(h *source.Handle) int {
	if h == nil || h.Stream == nil {
		return 0
	}
	return h.Stream.Bandwidth
}
