package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/cbstream/cbstream/color"
	"github.com/cbstream/cbstream/constant"
	"github.com/cbstream/cbstream/provider"
	"github.com/cbstream/cbstream/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
}

var versionTemplate = lo.Must(template.New("version").Funcs(map[string]any{
	"faint":   style.Faint,
	"bold":    style.Bold,
	"magenta": style.Fg(color.Purple),
	"join":    strings.Join,
}).Parse(`{{ magenta "▇▇▇" }} {{ magenta .App }}

  {{ faint "Version" }}         {{ bold .Version }}
  {{ faint "Git Commit" }}      {{ bold .Revision }}
  {{ faint "Build Date" }}      {{ bold .BuiltAt }}
  {{ faint "Built By" }}        {{ bold .BuiltBy }}
  {{ faint "Platform" }}        {{ bold .OS }}/{{ bold .Arch }}
  {{ faint "Sources" }}         {{ bold (join .Sources ", ") }}
`))

// versionCmd displays application version and build metadata.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build metadata",
	Long:  "Display the current application version, build revision, platform architecture and built-in sources.",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		info := struct {
			App, Version, OS, Arch     string
			BuiltAt, BuiltBy, Revision string
			Sources                    []string
		}{
			App:      constant.App,
			Version:  constant.Version,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			Revision: constant.Revision,
			Sources: lo.Map(provider.Builtins(), func(p *provider.Provider, _ int) string {
				return p.Name
			}),
		}

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), info))
	},
}
