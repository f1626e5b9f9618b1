// SPDX-License-Identifier: MPL-2.0

package presenter

import "github.com/charmbracelet/lipgloss"

// Color palette shared by every presenter and the CLI error output.
const (
	// ColorPrimary is purple, used for titles.
	ColorPrimary = lipgloss.Color("#7C3AED")
	// ColorMuted is gray, used for secondary text.
	ColorMuted = lipgloss.Color("#6B7280")
	// ColorSuccess is green.
	ColorSuccess = lipgloss.Color("#10B981")
	// ColorError is red.
	ColorError = lipgloss.Color("#EF4444")
	// ColorWarning is amber.
	ColorWarning = lipgloss.Color("#F59E0B")
	// ColorHighlight is blue, used for step labels.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

type lineKind int

const (
	lineTitle lineKind = iota
	lineMuted
	lineSuccess
	lineWarning
	lineError
	lineInfo
)

var lineStyles = map[lineKind]lipgloss.Style{
	lineTitle:   lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
	lineMuted:   lipgloss.NewStyle().Foreground(ColorMuted),
	lineSuccess: lipgloss.NewStyle().Foreground(ColorSuccess),
	lineWarning: lipgloss.NewStyle().Foreground(ColorWarning),
	lineError:   lipgloss.NewStyle().Bold(true).Foreground(ColorError),
	lineInfo:    lipgloss.NewStyle().Foreground(ColorHighlight),
}

// color returns the palette color for kind as a hex string (for gum).
func (k lineKind) color() string {
	switch k {
	case lineTitle:
		return string(ColorPrimary)
	case lineMuted:
		return string(ColorMuted)
	case lineSuccess:
		return string(ColorSuccess)
	case lineWarning:
		return string(ColorWarning)
	case lineError:
		return string(ColorError)
	default:
		return string(ColorHighlight)
	}
}
