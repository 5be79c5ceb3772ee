package cmd

import (
	"os"

	"github.com/cbstream/cbstream/color"
	"github.com/cbstream/cbstream/provider"
	"github.com/cbstream/cbstream/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

// sourcesCmd provides a parent command for inspecting site adapters.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Inspect the built-in site adapters",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Suppress header and metadata descriptions in the output")
	sourcesListCmd.SetOut(os.Stdout)
}

// sourcesListCmd displays a summary of all registered site adapters.
var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display a collection of all registered site adapters",
	Run: func(cmd *cobra.Command, args []string) {
		raw := lo.Must(cmd.Flags().GetBool("raw"))
		if !raw {
			cmd.Println(style.New().Foreground(color.HiBlue).Bold(true).Render("Builtin:"))
		}

		for _, p := range provider.Builtins() {
			if raw {
				cmd.Println(p.ID)
				continue
			}
			cmd.Printf("%s %s\n", p.Name, style.Faint("("+p.ID+")"))
		}
	},
}
