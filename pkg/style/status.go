package style

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/dotup/pkg/links"
)

// StatusStyle returns the appropriate pterm style for a link status
func StatusStyle(status links.Status) *pterm.Style {
	switch status {
	case links.StatusLinked:
		return pterm.NewStyle(pterm.FgGreen)
	case links.StatusAbsent:
		return pterm.NewStyle(pterm.FgYellow)
	case links.StatusExists, links.StatusLinkedElsewhere:
		return pterm.NewStyle(pterm.FgCyan)
	case links.StatusBroken, links.StatusTargetDir, links.StatusMissingSource:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StatusLabel renders a fixed-width colored status label for listings
func StatusLabel(status links.Status) string {
	return StatusStyle(status).Sprintf("%-7s", status.Label())
}

// Result labels used by verify and link output. Computed per call so the
// color decision from Setup is respected.
func OKLabel() string   { return pterm.NewStyle(pterm.FgGreen).Sprintf("%-8s", "OK") }
func FailLabel() string { return pterm.NewStyle(pterm.FgRed).Sprintf("%-8s", "FAIL") }
func MissLabel() string { return pterm.NewStyle(pterm.FgRed).Sprintf("%-8s", "MISSING") }
func SkipLabel() string { return pterm.NewStyle(pterm.FgYellow).Sprintf("%-8s", "SKIP") }
func DryLabel() string  { return pterm.NewStyle(pterm.FgCyan).Sprintf("%-8s", "DRYRUN") }

// Rule renders a left-aligned section header
func Rule(title string) string {
	return fmt.Sprintf("%s %s", TitleStyle.Render("──"), TitleStyle.Render(title))
}
