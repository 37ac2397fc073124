// Package formatter renders match tables and value text for both the TUI
// panels and one-shot CLI output.
package formatter

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/oakwood-commons/kvq/internal/document"
)

var (
	defaultHeaderFG  = lipgloss.Color("12")
	defaultHeaderBG  = lipgloss.Color("236")
	defaultKeyColor  = lipgloss.Color("14")
	defaultValue     = lipgloss.Color("248")
	defaultSeparator = lipgloss.Color("240")

	headerStyle    lipgloss.Style
	keyStyle       lipgloss.Style
	valueStyle     lipgloss.Style
	separatorStyle lipgloss.Style
)

// TableColors controls the rendered colors for the match table. Nil
// fields fall back to the defaults (ANSI 256 codes).
type TableColors struct {
	HeaderFG       color.Color
	HeaderBG       color.Color
	KeyColor       color.Color
	ValueColor     color.Color
	SeparatorColor color.Color
}

func applyTableTheme(tc TableColors) {
	hfg := tc.HeaderFG
	hbg := tc.HeaderBG
	kc := tc.KeyColor
	vc := tc.ValueColor
	sep := tc.SeparatorColor
	if hfg == nil {
		hfg = defaultHeaderFG
	}
	if hbg == nil {
		hbg = defaultHeaderBG
	}
	if kc == nil {
		kc = defaultKeyColor
	}
	if vc == nil {
		vc = defaultValue
	}
	if sep == nil {
		sep = defaultSeparator
	}

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(hfg).Background(hbg)
	keyStyle = lipgloss.NewStyle().Foreground(kc)
	valueStyle = lipgloss.NewStyle().Foreground(vc)
	separatorStyle = lipgloss.NewStyle().Foreground(sep)
}

// SetTableTheme overrides the table styles. Zero-valued fields fall back
// to formatter defaults.
func SetTableTheme(tc TableColors) {
	applyTableTheme(tc)
}

//nolint:gochecknoinits // initialize default table theme for package consumers
func init() {
	applyTableTheme(TableColors{})
}

// Stringify returns a compact single-line representation of a node for
// table cells. Compound nodes render as compact JSON in document order.
func Stringify(n *document.Node) string {
	if n == nil {
		return ""
	}
	if n.Kind == document.Scalar {
		switch v := n.Value.(type) {
		case nil:
			return ""
		case string:
			return escapeScalarString(v)
		default:
			return fmt.Sprint(v)
		}
	}
	if b, err := n.MarshalJSON(); err == nil {
		return string(b)
	}
	return fmt.Sprintf("%v", n)
}

// escapeScalarString flattens control characters so table rows stay single-line.
func escapeScalarString(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\n", "\\n")
}

// RenderRows prints a two-column KEY/VALUE table for precomputed rows.
// Column widths of 0 pick defaults (key 30, value 20 minimum).
func RenderRows(rows [][]string, noColor bool, keyColWidth, valueColWidth int) string {
	sepWidth := 2
	minValueWidth := 20
	sep := strings.Repeat(" ", sepWidth)

	keyWidth := keyColWidth
	if keyWidth <= 0 {
		keyWidth = 30
	}
	valueWidth := valueColWidth
	if valueWidth < minValueWidth {
		valueWidth = minValueWidth
	}

	var b strings.Builder

	headerKey := padRight("KEY", keyWidth)
	headerValue := padRight("VALUE", valueWidth)
	if !noColor {
		headerKey = headerStyle.Render(headerKey)
		headerValue = headerStyle.Render(headerValue)
	}
	b.WriteString(headerKey + sep + headerValue + "\n")

	separator := strings.Repeat("─", keyWidth+sepWidth+valueWidth)
	if !noColor {
		separator = separatorStyle.Render(separator)
	}
	b.WriteString(separator + "\n")

	for _, row := range rows {
		key := ""
		val := ""
		if len(row) > 0 {
			key = row[0]
		}
		if len(row) > 1 {
			val = row[1]
		}
		keyStr := padRight(Truncate(key, keyWidth), keyWidth)
		valStr := padRight(Truncate(val, valueWidth), valueWidth)
		if !noColor {
			keyStr = keyStyle.Render(keyStr)
			valStr = valueStyle.Render(valStr)
		}
		b.WriteString(keyStr + sep + valStr + "\n")
	}

	return b.String()
}

// Truncate shortens a string to maxLen display cells, appending an
// ellipsis when it had to cut. Width math uses runewidth so wide glyphs
// (emoji, CJK) count their real cell width.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || runewidth.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return runewidth.Truncate(s, maxLen, "")
	}
	return runewidth.Truncate(s, maxLen, "...")
}

// padRight pads a string to the given display width.
func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return runewidth.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}

// TerminalWidth returns the stdout terminal width, or a default when
// detection fails (piped output, tests).
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 120
	}
	return width
}
