package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/kvq/internal/formatter"
)

// Theme defines colors used across the UI. Host apps can supply their own.
type Theme struct {
	TitleFG        color.Color // Header bar text
	TitleBG        color.Color // Header bar background
	KeyColor       color.Color // Keys in the match table
	ValueColor     color.Color // Values in the match table
	PathColor      color.Color // Resolved path line
	SeparatorColor color.Color // Separator lines
	LabelColor     color.Color // Field labels
	StatusError    color.Color // Parse diagnostics
	StatusInfo     color.Color // Count lines / notices
	FooterFG       color.Color // Footer text
	FooterBG       color.Color // Footer background
}

// DefaultTheme returns the standard dark palette.
func DefaultTheme() Theme {
	return Theme{
		TitleFG:        lipgloss.Color("81"),
		TitleBG:        lipgloss.Color("236"),
		KeyColor:       lipgloss.Color("81"),
		ValueColor:     lipgloss.Color("246"),
		PathColor:      lipgloss.Color("12"),
		SeparatorColor: lipgloss.Color("240"),
		LabelColor:     lipgloss.Color("14"),
		StatusError:    lipgloss.Color("9"),
		StatusInfo:     lipgloss.Color("11"),
		FooterFG:       lipgloss.Color("15"),
		FooterBG:       lipgloss.Color("240"),
	}
}

var currentTheme = DefaultTheme()

// CurrentTheme returns the active theme.
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme replaces the active theme and pushes the table colors into the
// formatter so CLI and TUI output stay consistent.
func SetTheme(th Theme) {
	currentTheme = th
	formatter.SetTableTheme(formatter.TableColors{
		HeaderFG:       th.TitleFG,
		HeaderBG:       th.TitleBG,
		KeyColor:       th.KeyColor,
		ValueColor:     th.ValueColor,
		SeparatorColor: th.SeparatorColor,
	})
}
