package inline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cbstream/cbstream/log"
	"github.com/cbstream/cbstream/source"
	"github.com/cbstream/cbstream/util"
	"github.com/samber/lo"
)

// ErrOffline is returned in plain mode when the room produced no streams.
var ErrOffline = errors.New("room is offline or private")

func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	if options.Source == nil {
		return errors.New("source not set")
	}

	result, err := options.Source.Streams(ctx, options.URL)
	if err != nil {
		return err
	}

	handles := result.Handles
	if options.Picker.IsPresent() && len(handles) > 0 {
		picked, err := options.Picker.MustGet()(handles)
		if err != nil {
			return err
		}
		log.Infof("picked stream %s for %s", picked.Name, result.Identifier)
		handles = []*source.Handle{picked}
	}

	if options.Json {
		return writeJson(options.Out, newOutput(options.URL, options.Source.Name(), result, handles))
	}

	if len(handles) == 0 {
		return fmt.Errorf("%w: %s", ErrOffline, result.Identifier)
	}

	if options.Picker.IsPresent() {
		_, err = fmt.Fprintln(options.Out, handles[0].Stream.URL)
		return err
	}

	width := util.Max(lo.Map(handles, func(h *source.Handle, _ int) int {
		return len(h.Name)
	})...)

	for _, h := range handles {
		if _, err := fmt.Fprintf(options.Out, "%-*s %s\n", width, h.Name, h.Stream.URL); err != nil {
			return err
		}
	}

	return nil
}

func writeJson(out io.Writer, output *Output) error {
	data, err := asJson(output)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
