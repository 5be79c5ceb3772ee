package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/cbstream/cbstream/color"
	"github.com/cbstream/cbstream/constant"
	"github.com/cbstream/cbstream/icon"
	"github.com/cbstream/cbstream/player"
	"github.com/cbstream/cbstream/style"
	"github.com/charmbracelet/lipgloss"
)

// CheckDependencies verifies that the configured player is installed.
func CheckDependencies(p player.Player) {
	if !player.Available(p) {
		printMissingDependencyError(p.Binary())
		os.Exit(1)
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case constant.Darwin:
		installCmd = "brew install " + dep
	case constant.Linux:
		installCmd = "sudo apt install " + dep
	case constant.Windows:
		installCmd = "scoop install " + dep
	}

	title := style.New().Bold(true).Foreground(color.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(color.White).Render(fmt.Sprintf("The required dependency '%s' was not found in your PATH.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(color.HiCyan).Bold(true).Render(installCmd))
	}

	fmt.Println(style.Box(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
