package player

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/cbstream/cbstream/constant"
)

// IINA implements the Player interface for macOS native IINA playback.
// IINA takes mpv options through LaunchServices, so it reuses the mpv arguments.
type IINA struct {
	mpv *MPV
}

func NewIINA() *IINA {
	return &IINA{mpv: NewMPV()}
}

func (*IINA) Binary() string {
	return "open"
}

// Args builds the open(1) command line for a stream.
func (i *IINA) Args(rawURL, title string, headers map[string]string) ([]string, error) {
	mpvArgs, err := i.mpv.Args(rawURL, title, headers)
	if err != nil {
		return nil, err
	}

	// open forwards everything after --args; the URL goes last without mpv's "--".
	target := mpvArgs[len(mpvArgs)-1]
	options := mpvArgs[:len(mpvArgs)-2]

	args := []string{"-a", "IINA", "--args"}
	for _, o := range options {
		args = append(args, "--mpv-"+o[2:])
	}
	return append(args, target), nil
}

func (i *IINA) Play(ctx context.Context, rawURL string, title string, headers map[string]string) error {
	if runtime.GOOS != constant.Darwin {
		return fmt.Errorf("IINA is only supported on macOS")
	}

	args, err := i.Args(rawURL, title, headers)
	if err != nil {
		return err
	}

	if err := exec.CommandContext(ctx, i.Binary(), args...).Run(); err != nil {
		return fmt.Errorf("LaunchServices failed to invoke IINA: %w", err)
	}
	return nil
}
