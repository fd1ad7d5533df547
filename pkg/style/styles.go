// Package style centralizes terminal rendering for dotup output: status
// labels, section rules, and the wizard's panels.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)
)

// Setup disables colored output when stdout is not a terminal or the
// terminal reports no color support.
func Setup() {
	if !isatty.IsTerminal(os.Stdout.Fd()) || termenv.ColorProfile() == termenv.Ascii {
		pterm.DisableColor()
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Helper functions
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}

func Muted(s string) string {
	return MutedStyle.Render(s)
}

func Success(s string) string {
	return SuccessStyle.Render(s)
}

func Error(s string) string {
	return ErrorStyle.Render(s)
}

func Warning(s string) string {
	return WarningStyle.Render(s)
}

func Info(s string) string {
	return InfoStyle.Render(s)
}

func Panel(s string) string {
	return PanelStyle.Render(s)
}
