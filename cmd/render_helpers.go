package cmd

import (
	"fmt"
	"strings"

	"github.com/oakwood-commons/kvq/internal/diff"
	"github.com/oakwood-commons/kvq/internal/formatter"
	"github.com/oakwood-commons/kvq/internal/resolver"
	"github.com/oakwood-commons/kvq/internal/session"
)

// renderResult formats a one-shot result for stdout. Quiet mode strips
// the explanatory headers so only the payload remains.
func renderResult(sess *session.Session, res resolver.Result, noColor, quiet bool, width int) string {
	var b strings.Builder
	switch res.Kind {
	case resolver.Exact:
		if !quiet {
			b.WriteString(res.Path + "\n")
		}
		b.WriteString(res.Value + "\n")
	case resolver.SuffixMatch:
		if !quiet {
			fmt.Fprintf(&b, "no exact match; %d key(s) ending in %q:\n", res.Count, sess.Query())
		}
		b.WriteString(renderMatchTable(sess, res.Keys, noColor, width))
	case resolver.PrefixMatch:
		if !quiet {
			fmt.Fprintf(&b, "no exact match; %d key(s) starting with %q:\n", res.Count, sess.Query())
		}
		b.WriteString(renderMatchTable(sess, res.Keys, noColor, width))
	case resolver.NoMatch:
		if !quiet {
			fmt.Fprintf(&b, "no keys match %q\n", sess.Query())
		}
	}
	return b.String()
}

// renderMatchTable lists matched keys with their freshly resolved values.
func renderMatchTable(sess *session.Session, keys []string, noColor bool, width int) string {
	rows := make([][]string, 0, len(keys))
	keyWidth := 0
	for _, k := range keys {
		if len(k) > keyWidth {
			keyWidth = len(k)
		}
		val := ""
		if node, ok := resolver.Lookup(sess.Document(), k); ok {
			val = formatter.Stringify(node)
		}
		rows = append(rows, []string{k, val})
	}
	if keyWidth < 3 {
		keyWidth = 3
	}
	valueWidth := width - keyWidth - 2
	return formatter.RenderRows(rows, noColor, keyWidth, valueWidth)
}

func renderDiffResult(d diff.Result, noColor bool) string {
	return formatter.RenderDiff(d, noColor)
}

// formatterWidth returns the usable output width for one-shot rendering.
// An explicit --width wins over terminal detection.
func formatterWidth() int {
	if outputWidth > 0 {
		return outputWidth
	}
	return formatter.TerminalWidth()
}
