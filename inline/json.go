package inline

import (
	"encoding/json"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/cbstream/cbstream/source"
	"github.com/invopop/jsonschema"
)

type Stream struct {
	// Name is the quality label, e.g. 720p or default.
	Name string `json:"name"`
	// URL is the HLS playlist to play.
	URL string `json:"url"`
	// Headers must be sent along with every playlist and segment request.
	Headers    map[string]string `json:"headers,omitempty"`
	Bandwidth  int               `json:"bandwidth,omitempty"`
	Resolution string            `json:"resolution,omitempty"`
	FrameRate  float64           `json:"frame_rate,omitempty"`
}

type Output struct {
	// URL is the room URL that was resolved.
	URL        string `json:"url"`
	Source     string `json:"source"`
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Category   string `json:"category"`
	// Status is the room status reported by the site, empty when unknown.
	Status string `json:"status,omitempty"`
	// Outcome tells whether streams came from the playlist variants or the raw playlist.
	Outcome string    `json:"outcome" jsonschema:"enum=empty,enum=variants,enum=fallback"`
	Streams []*Stream `json:"streams"`
}

func newOutput(url, sourceName string, result *source.Result, handles []*source.Handle) *Output {
	streams := make([]*Stream, 0, len(handles))
	for _, h := range handles {
		streams = append(streams, &Stream{
			Name:       h.Name,
			URL:        h.Stream.URL,
			Headers:    h.Stream.Headers,
			Bandwidth:  h.Stream.Bandwidth,
			Resolution: h.Stream.Resolution,
			FrameRate:  h.Stream.FrameRate,
		})
	}

	return &Output{
		URL:        url,
		Source:     sourceName,
		Identifier: result.Identifier,
		Title:      result.Title,
		Author:     result.Author,
		Category:   result.Category,
		Status:     result.Status,
		Outcome:    result.Outcome,
		Streams:    streams,
	}
}

func asJson(output *Output) ([]byte, error) {
	return json.Marshal(output)
}

// Schema returns the JSON schema of the inline output.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		name := t.Name()
		switch strings.ToLower(name) {
		case "stream", "output":
			return filepath.Base(t.PkgPath()) + "." + name
		}

		return name
	}

	return reflector.Reflect(&Output{})
}
