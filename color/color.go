// Package color provides the curated palette used for CLI output.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
)

// High-intensity variants.
var (
	HiRed    = New("9")
	HiBlue   = New("12")
	HiPurple = New("13")
	HiCyan   = New("14")
)

// Semantic colors for room state.
var (
	Live    = New("#f38ba8")
	Offline = New("#6c7086")
)
