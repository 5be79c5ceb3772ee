package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/cbstream/cbstream/filesystem"
	"github.com/cbstream/cbstream/inline"
	"github.com/cbstream/cbstream/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(streamsCmd)

	streamsCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	streamsCmd.Flags().StringP("stream", "s", "", "Only output the selected stream: best, worst or a name such as 720p")
	lo.Must0(streamsCmd.RegisterFlagCompletionFunc("stream", completionStreams))
	streamsCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")
}

// streamsCmd resolves a room without playing it, for use in scripts.
var streamsCmd = &cobra.Command{
	Use:   "streams [url]",
	Short: "Resolve the streams of a room and print them",
	Long: `Resolve the streams of a room without starting a player.

Without flags every stream is printed as "name url", one per line.
With --stream only the URL of the selected stream is printed.
Stream selectors:
  best - highest bandwidth
  worst - lowest bandwidth
  [name] - stream name such as 720p, partial names are matched fuzzily

An offline room is an error in plain mode and an empty stream list with --json.`,
	Example: "  cbstream streams --json https://chaturbate.com/alice/",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		url := strings.TrimSpace(args[0])
		src, err := sourceFor(url)
		handleErr(err)

		output := lo.Must(cmd.Flags().GetString("output"))
		var writer io.Writer
		if output != "" {
			f, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(f.Close)
			writer = f
		} else {
			writer = os.Stdout
		}

		picker := mo.None[inline.StreamPicker]()
		if flag := lo.Must(cmd.Flags().GetString("stream")); flag != "" {
			fn, err := inline.ParseStreamPicker(flag)
			handleErr(err)
			picker = mo.Some(fn)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		options := &inline.Options{
			Out:    writer,
			Source: src,
			URL:    url,
			Json:   lo.Must(cmd.Flags().GetBool("json")),
			Picker: picker,
		}

		handleErr(inline.Run(ctx, options))
	},
}

func init() {
	streamsCmd.AddCommand(streamsSchemaCmd)
}

// streamsSchemaCmd prints the JSON schema of the structured streams output.
var streamsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for the structured streams output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(json.NewEncoder(os.Stdout).Encode(inline.Schema()))
	},
}
