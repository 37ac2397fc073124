package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// FooterModel renders the key-binding hints at the bottom of the screen.
// It is passive; it never handles messages itself.
type FooterModel struct {
	NoColor bool
	Width   int
}

// NewFooterModel creates a footer with default width.
func NewFooterModel(noColor bool) FooterModel {
	return FooterModel{NoColor: noColor, Width: 92}
}

type footerHint struct {
	key   string
	label string
}

// View renders the footer hints for the current focus area.
func (m FooterModel) View(focus focusArea, liveDocument bool) string {
	th := CurrentTheme()
	keyStyle := lipgloss.NewStyle()
	if !m.NoColor {
		keyStyle = keyStyle.Foreground(th.FooterFG).Background(th.FooterBG).Bold(true)
	}

	hints := []footerHint{
		{"tab", "next field"},
	}
	if focus == focusDocument && !liveDocument {
		hints = append(hints, footerHint{"esc", "commit document"})
	} else {
		hints = append(hints, footerHint{"esc", "clear"})
	}
	hints = append(hints,
		footerHint{"f1", "help"},
		footerHint{"ctrl+c", "quit"},
	)

	parts := make([]string, 0, len(hints)*2)
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(" "+h.key+" "), h.label)
	}
	line := strings.Join(parts, " ")
	if m.Width > 0 {
		line = lipgloss.NewStyle().Width(m.Width).Render(line)
	}
	return line
}
