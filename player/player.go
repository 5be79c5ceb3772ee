// Package player hands a resolved stream over to an external media player.
package player

import (
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/cbstream/cbstream/key"
	"github.com/spf13/viper"
)

// Player encapsulates the required capabilities for a media playback backend.
type Player interface {
	// Play starts playback of the given URL with the specified title. Headers are
	// sent with every playlist and segment request.
	Play(ctx context.Context, url string, title string, headers map[string]string) error

	// Binary returns the executable the player runs.
	Binary() string
}

// New returns the player registered under name.
func New(name string) (Player, error) {
	switch strings.ToLower(name) {
	case "mpv":
		return NewMPV(), nil
	case "iina":
		return NewIINA(), nil
	default:
		return nil, fmt.Errorf("unknown player %q", name)
	}
}

// FromConfig returns the configured player.
func FromConfig() (Player, error) {
	p, err := New(viper.GetString(key.Player))
	if err != nil {
		return nil, err
	}

	if m, ok := p.(*MPV); ok {
		m.Detach = viper.GetBool(key.PlayerDetach)
	}
	return p, nil
}

// Available reports whether the player's executable is on PATH.
func Available(p Player) bool {
	_, err := exec.LookPath(p.Binary())
	return err == nil
}

// headerFields joins headers in the form mpv expects for --http-header-fields,
// sorted by name so the argument is stable.
func headerFields(headers map[string]string) string {
	names := make([]string, 0, len(headers))
	for k := range headers {
		names = append(names, k)
	}
	sort.Strings(names)

	fields := make([]string, 0, len(names))
	for _, k := range names {
		// the option is a comma separated list
		fields = append(fields, fmt.Sprintf("%s: %s", k, strings.ReplaceAll(headers[k], ",", "%2C")))
	}
	return strings.Join(fields, ",")
}
