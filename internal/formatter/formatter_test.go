package formatter

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/kvq/internal/document"
	"github.com/oakwood-commons/kvq/pkg/loader"
)

func TestStringifyScalars(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"string", "hello", "hello"},
		{"int", 42, "42"},
		{"bool", false, "false"},
		{"null", nil, ""},
		{"multiline", "a\nb", "a\\nb"},
		{"crlf", "a\r\nb", "a\\nb"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := &document.Node{Kind: document.Scalar, Value: tc.value}
			assert.Equal(t, tc.want, Stringify(n))
		})
	}
}

func TestStringifyCompoundIsCompactJSON(t *testing.T) {
	tree, err := loader.Parse("zebra: 1\napple: two\n")
	require.NoError(t, err)
	assert.Equal(t, `{"zebra":1,"apple":"two"}`, Stringify(tree))

	tree, err = loader.Parse("items:\n  - 1\n  - 2\n")
	require.NoError(t, err)
	node, ok := tree.Get("items")
	require.True(t, ok)
	assert.Equal(t, `[1,2]`, Stringify(node))
}

func TestStringifyNil(t *testing.T) {
	assert.Equal(t, "", Stringify(nil))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "abc", Truncate("abc", 0), "non-positive width leaves input alone")
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijk", 10))

	// Emoji are two cells wide; width math must be cell-based, not
	// rune-based.
	assert.Equal(t, "👋👋", Truncate("👋👋", 4))
	got := Truncate("👋👋👋👋", 6)
	assert.LessOrEqual(t, runewidth.StringWidth(got), 6)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestRenderRowsNoColor(t *testing.T) {
	rows := [][]string{
		{"hello.from", `{"your":{...}}`},
		{"hello", ""},
	}
	out := RenderRows(rows, true, 20, 20)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.True(t, strings.HasPrefix(lines[0], "KEY"))
	assert.Contains(t, lines[0], "VALUE")
	assert.True(t, strings.HasPrefix(lines[1], "─"))
	assert.True(t, strings.HasPrefix(lines[2], "hello.from"))
	assert.True(t, strings.HasPrefix(lines[3], "hello"))
}

func TestRenderRowsTruncatesLongKeys(t *testing.T) {
	long := strings.Repeat("k", 50)
	out := RenderRows([][]string{{long, "v"}}, true, 10, 20)
	assert.NotContains(t, out, long)
	assert.Contains(t, out, "kkkkkkk...")
}
