// pkg/display/styles.go

package display

import (
	"github.com/charmbracelet/lipgloss"
)

// Common color palette for consistent styling
var (
	ColorPrimary = lipgloss.Color("#00ffff") // Cyan
	ColorSuccess = lipgloss.Color("#00ff00") // Green
	ColorWarning = lipgloss.Color("#ffaa00") // Orange
	ColorInfo    = lipgloss.Color("#0099ff") // Blue
	ColorMuted   = lipgloss.Color("#666666") // Gray
)

// Styles groups the render styles for one report.
type Styles struct {
	Banner   lipgloss.Style
	Section  lipgloss.Style
	Selected lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
}

// NewStyles returns the styled palette, or pass-through styles when color
// is disabled.
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{
			Banner:   plain,
			Section:  plain,
			Selected: plain,
			Label:    plain,
			Muted:    plain,
		}
	}
	return Styles{
		Banner:   lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true),
		Section:  lipgloss.NewStyle().Foreground(ColorInfo).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
		Label:    lipgloss.NewStyle().Foreground(ColorWarning),
		Muted:    lipgloss.NewStyle().Foreground(ColorMuted),
	}
}
