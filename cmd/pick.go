package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/cbstream/cbstream/constant"
	"github.com/cbstream/cbstream/inline"
	"github.com/cbstream/cbstream/key"
	"github.com/cbstream/cbstream/source"
	"github.com/cbstream/cbstream/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// interactive is swapped out in tests.
var interactive = util.IsInteractive

// pickStream chooses the stream to play: the --stream flag wins, then an interactive
// prompt when attached to a terminal, then the streams.default setting.
func pickStream(cmd *cobra.Command, result *source.Result) (*source.Handle, error) {
	if cmd.Flags().Changed("stream") {
		return pickWith(lo.Must(cmd.Flags().GetString("stream")), result.Handles)
	}

	preferred, err := pickWith(viper.GetString(key.StreamsDefault), result.Handles)
	if err != nil {
		preferred = result.Handles[0]
	}

	if len(result.Handles) == 1 || !interactive() {
		return preferred, nil
	}

	var name string
	prompt := &survey.Select{
		Message: fmt.Sprintf("Choose a stream for %s", result.Title),
		Options: result.Names(),
		Default: preferred.Name,
		Description: func(value string, index int) string {
			return result.Handles[index].Stream.String()
		},
	}

	if err := survey.AskOne(prompt, &name); err != nil {
		return nil, err
	}

	h, _ := result.Get(name)
	return h, nil
}

func pickWith(selector string, handles []*source.Handle) (*source.Handle, error) {
	picker, err := inline.ParseStreamPicker(lo.CoalesceOrEmpty(selector, constant.StreamBest))
	if err != nil {
		return nil, err
	}
	return picker(handles)
}

func completionStreams(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{constant.StreamBest, constant.StreamWorst, "1080p60", "1080p", "720p", "480p", "240p"}, cobra.ShellCompDirectiveNoFileComp
}
