package formatter

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/kvq/internal/diff"
)

var (
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Strikethrough(true)
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	matchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// MatchBanner is shown instead of a diff when the two strings are equal.
const MatchBanner = "It's a match! 🎉"

// RenderDiff renders an edit script as styled text: removed runs red and
// struck through, added runs green, unchanged runs plain, concatenated in
// original order. The match outcome renders as its own banner.
func RenderDiff(res diff.Result, noColor bool) string {
	if res.Match {
		if noColor {
			return MatchBanner
		}
		return matchStyle.Render(MatchBanner)
	}

	var b strings.Builder
	for _, seg := range res.Segments {
		switch seg.Kind {
		case diff.Removed:
			if noColor {
				b.WriteString("[-" + seg.Text + "-]")
			} else {
				b.WriteString(removedStyle.Render(seg.Text))
			}
		case diff.Added:
			if noColor {
				b.WriteString("[+" + seg.Text + "+]")
			} else {
				b.WriteString(addedStyle.Render(seg.Text))
			}
		case diff.Unchanged:
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}
