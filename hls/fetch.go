// Package hls resolves HLS multivariant playlists into named playable streams.
package hls

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxPlaylistSize caps how much of a playlist is read.
const maxPlaylistSize = 4 << 20

// Fetch downloads the playlist at url with the given extra headers.
func Fetch(ctx context.Context, client *http.Client, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create playlist request: %w", err)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch playlist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch playlist: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPlaylistSize))
	if err != nil {
		return nil, fmt.Errorf("read playlist body: %w", err)
	}
	return data, nil
}
