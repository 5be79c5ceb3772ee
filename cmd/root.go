// Package cmd implements the command-line interface for cbstream.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/cbstream/cbstream/color"
	"github.com/cbstream/cbstream/constant"
	"github.com/cbstream/cbstream/icon"
	"github.com/cbstream/cbstream/key"
	"github.com/cbstream/cbstream/log"
	"github.com/cbstream/cbstream/player"
	"github.com/cbstream/cbstream/provider"
	"github.com/cbstream/cbstream/source"
	"github.com/cbstream/cbstream/style"
	"github.com/cbstream/cbstream/util"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("user-agent", "U", "", "Override the User-Agent sent to the site and the player")
	lo.Must0(viper.BindPFlag(key.NetworkUserAgent, rootCmd.PersistentFlags().Lookup("user-agent")))

	rootCmd.PersistentFlags().Int("timeout", 0, "HTTP timeout in seconds for a single request")
	lo.Must0(viper.BindPFlag(key.NetworkTimeout, rootCmd.PersistentFlags().Lookup("timeout")))

	rootCmd.PersistentFlags().Bool("fingerprint", false, "Dial with a Chrome TLS fingerprint")
	lo.Must0(viper.BindPFlag(key.NetworkTLSFingerprint, rootCmd.PersistentFlags().Lookup("fingerprint")))

	rootCmd.Flags().StringP("stream", "s", "", "Stream to play: best, worst or a name such as 720p")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("stream", completionStreams))

	rootCmd.Flags().StringP("player", "p", "", "Media player to hand the stream to")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("player", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"mpv", "iina"}, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.Player, rootCmd.Flags().Lookup("player")))

	rootCmd.Flags().BoolP("detach", "d", false, "Return as soon as the player has started")
	lo.Must0(viper.BindPFlag(key.PlayerDetach, rootCmd.Flags().Lookup("detach")))
}

// rootCmd defines the entry point for the cbstream application.
var rootCmd = &cobra.Command{
	Use:   constant.App + " [url]",
	Short: "Resolve a live room into HLS streams and play it",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Resolve a live room into HLS streams and play it"),
	Example: "  " + constant.App + " https://chaturbate.com/alice/\n  " +
		constant.App + " -s 720p https://chaturbate.com/alice/",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		p, err := player.FromConfig()
		handleErr(err)
		CheckDependencies(p)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		url := strings.TrimSpace(args[0])
		src, err := sourceFor(url)
		handleErr(err)

		result, err := src.Streams(ctx, url)
		handleErr(err)

		if !result.Live() {
			printOffline(result)
			os.Exit(1)
		}

		fmt.Printf(
			"%s %s %s\n",
			icon.Get(icon.Stream),
			style.Bold(result.Title),
			style.Faint(util.Quantify(len(result.Handles), "stream", "streams")),
		)

		h, err := pickStream(cmd, result)
		handleErr(err)

		fmt.Printf(
			"%s playing %s from %s\n",
			style.Fg(color.Live)(icon.Get(icon.Live)),
			style.Fg(color.Yellow)(h.Name),
			style.Bold(result.Title),
		)

		handleErr(p.Play(ctx, h.Stream.URL, result.Title, h.Stream.Headers))
	},
}

// sourceFor creates the source of the first provider that handles url.
func sourceFor(url string) (source.Source, error) {
	p, ok := provider.ForURL(url)
	if !ok {
		return nil, fmt.Errorf("no source handles %s", url)
	}

	log.Infof("using source %s for %s", p.Name, url)
	return p.CreateSource()
}

func printOffline(result *source.Result) {
	status := lo.CoalesceOrEmpty(result.Status, "unavailable")
	fmt.Fprintf(
		os.Stderr,
		"%s %s is %s no streams to play\n",
		style.Fg(color.Offline)(icon.Get(icon.Offline)),
		style.Bold(result.Identifier),
		style.Tag(color.White, color.Offline)(status),
	)
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}

		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
