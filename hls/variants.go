package hls

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cbstream/cbstream/log"
	"github.com/cbstream/cbstream/network"
	"github.com/cbstream/cbstream/source"
	"github.com/grafov/m3u8"
)

// Resolver turns a multivariant playlist URL into named stream handles.
type Resolver struct {
	net *network.Context
}

func NewResolver(net *network.Context) *Resolver {
	if net == nil {
		net = &network.Context{Client: http.DefaultClient}
	}
	if net.Client == nil {
		net = &network.Context{Client: http.DefaultClient, UserAgent: net.UserAgent}
	}
	return &Resolver{net: net}
}

// Variants fetches manifestURL and returns one handle per variant, in playlist order.
// A media playlist yields no handles and no error. Every stream carries headers so
// the player can repeat the request.
func (r *Resolver) Variants(ctx context.Context, manifestURL string, headers map[string]string) ([]*source.Handle, error) {
	headers = r.withUserAgent(headers)

	data, err := Fetch(ctx, r.net.Client, manifestURL, headers)
	if err != nil {
		return nil, err
	}
	log.Debugf("fetched playlist %s (%d bytes)", manifestURL, len(data))

	return Parse(data, manifestURL, headers)
}

func (r *Resolver) withUserAgent(headers map[string]string) map[string]string {
	out := make(map[string]string, len(headers)+1)
	for k, v := range headers {
		out[k] = v
	}
	if _, ok := out["User-Agent"]; !ok && r.net.UserAgent != "" {
		out["User-Agent"] = r.net.UserAgent
	}
	return out
}

// Parse decodes playlist data fetched from manifestURL.
func Parse(data []byte, manifestURL string, headers map[string]string) ([]*source.Handle, error) {
	base, err := url.Parse(manifestURL)
	if err != nil {
		return nil, fmt.Errorf("parse manifest url: %w", err)
	}

	playlist, listType, err := m3u8.DecodeFrom(bytes.NewReader(data), true)
	if err != nil {
		return nil, fmt.Errorf("decode playlist: %w", err)
	}

	if listType != m3u8.MASTER {
		return nil, nil
	}

	master, ok := playlist.(*m3u8.MasterPlaylist)
	if !ok {
		return nil, fmt.Errorf("decode playlist: unexpected %T", playlist)
	}

	var (
		handles []*source.Handle
		taken   = make(map[string]int)
	)

	for i, v := range master.Variants {
		if v == nil || v.Iframe || v.URI == "" {
			continue
		}

		ref, err := base.Parse(strings.TrimSpace(v.URI))
		if err != nil {
			return nil, fmt.Errorf("variant %d: %w", i, err)
		}

		stream, err := source.NewHLSStream(ref.String(), headers)
		if err != nil {
			return nil, fmt.Errorf("variant %d: %w", i, err)
		}
		stream.Bandwidth = int(v.Bandwidth)
		stream.Resolution = v.Resolution
		stream.FrameRate = v.FrameRate

		handles = append(handles, &source.Handle{
			Name:   unique(variantName(v.VariantParams, len(handles)), taken),
			Stream: stream,
		})
	}

	return handles, nil
}

// variantName names a variant after its height ("720p", "720p60" above 30 fps),
// else its bandwidth in kbit/s ("1200k"), else its position.
func variantName(p m3u8.VariantParams, index int) string {
	if height, ok := resolutionHeight(p.Resolution); ok {
		name := strconv.Itoa(height) + "p"
		if p.FrameRate > 30 {
			name += strconv.Itoa(int(math.Round(p.FrameRate)))
		}
		return name
	}

	if p.Bandwidth > 0 {
		return strconv.Itoa(int(math.Round(float64(p.Bandwidth)/1000))) + "k"
	}

	return "variant" + strconv.Itoa(index)
}

func resolutionHeight(resolution string) (int, bool) {
	_, h, found := strings.Cut(strings.ToLower(resolution), "x")
	if !found {
		return 0, false
	}

	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return 0, false
	}
	return height, true
}

// unique suffixes repeated names with _alt, _alt2, ...
func unique(name string, taken map[string]int) string {
	n := taken[name]
	taken[name] = n + 1

	switch n {
	case 0:
		return name
	case 1:
		return name + "_alt"
	default:
		return name + "_alt" + strconv.Itoa(n)
	}
}
