package ui

import (
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/kvq/internal/session"
	"github.com/oakwood-commons/kvq/pkg/loader"
	"github.com/oakwood-commons/kvq/pkg/logger"
)

func newTestModel(t *testing.T, cfg Config) *Model {
	t.Helper()
	sess := session.New(logger.GetNoopLogger())
	require.NoError(t, sess.SetDocument(loader.SampleDocument))
	m := InitialModel(sess, cfg)
	return &m
}

func viewString(m *Model) string {
	return fmt.Sprint(m.View().Content)
}

func typeString(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestTypingQueryUpdatesSession(t *testing.T) {
	m := newTestModel(t, Config{NoColor: true})

	typeString(m, "tool")
	assert.Equal(t, "tool", m.Session.Query())

	res, ok := m.Session.Result()
	require.True(t, ok)
	assert.Equal(t, 1, res.Count)
}

func TestEscClearsQueryInput(t *testing.T) {
	m := newTestModel(t, Config{NoColor: true})
	typeString(m, "tool")
	require.Equal(t, "tool", m.Session.Query())

	m.Update(tea.KeyPressMsg{Code: tea.KeyEsc})
	assert.Equal(t, "", m.Session.Query())
	assert.Equal(t, "", m.Query.Value())
}

func TestTabAwayCommitsDocument(t *testing.T) {
	m := newTestModel(t, Config{NoColor: true})

	// shift+tab: query -> document.
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	require.Equal(t, focusDocument, m.focus)

	versionBefore := m.Session.Version()
	typeString(m, "x")
	assert.Equal(t, versionBefore, m.Session.Version(),
		"document edits must not commit per keystroke by default")

	// tab: document -> query, which commits the edit.
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	require.Equal(t, focusQuery, m.focus)
	if m.Session.Diagnostic() == "" {
		assert.Equal(t, versionBefore+1, m.Session.Version())
		assert.Equal(t, m.Doc.Value(), m.Session.Text())
	}
}

func TestLiveDocumentCommitsPerKeystroke(t *testing.T) {
	m := newTestModel(t, Config{NoColor: true, LiveDocument: true})
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	require.Equal(t, focusDocument, m.focus)

	typeString(m, "x")
	if m.Session.Diagnostic() == "" {
		assert.Equal(t, m.Doc.Value(), m.Session.Text(),
			"live mode must commit on every keystroke")
	} else {
		assert.NotEmpty(t, m.Session.Diagnostic())
	}
}

func TestBadDocumentKeepsIndexAndReportsDiagnostic(t *testing.T) {
	m := newTestModel(t, Config{NoColor: true})
	indexBefore := m.Session.Index()

	m.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	require.Equal(t, focusDocument, m.focus)
	m.Doc.SetValue("hello: [unclosed")
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})

	assert.Equal(t, indexBefore, m.Session.Index(), "last good index must stay live")
	assert.NotEmpty(t, m.status)
	assert.Contains(t, viewString(m), m.status)
}

func TestComparisonFieldOnlyReachableOnExactMatch(t *testing.T) {
	m := newTestModel(t, Config{NoColor: true})

	// Non-exact query: tab from the query wraps to the document.
	typeString(m, "tool")
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, focusDocument, m.focus)

	// Exact query: tab from the query reaches the comparison field.
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	require.Equal(t, focusQuery, m.focus)
	m.Query.SetValue("hello.from.your.favourite.yaml.tool")
	m.Session.SetQuery(m.Query.Value())
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, focusComparison, m.focus)
}

func TestComparisonTypingDrivesDiff(t *testing.T) {
	m := newTestModel(t, Config{NoColor: true})
	m.Query.SetValue("hello.from.your.favourite.yaml.tool")
	m.Session.SetQuery(m.Query.Value())
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	require.Equal(t, focusComparison, m.focus)

	typeString(m, `"👋"`)
	d, ok := m.Session.Diff()
	require.True(t, ok)
	assert.True(t, d.Match)
	assert.Contains(t, viewString(m), "match")
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, Config{NoColor: true})

	m.Update(tea.KeyPressMsg{Code: tea.KeyF1})
	assert.Contains(t, viewString(m), "kvq help")

	m.Update(tea.KeyPressMsg{Code: tea.KeyEsc})
	assert.NotContains(t, viewString(m), "kvq help")
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(t, Config{NoColor: true})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
}

func TestWindowSizeRelayout(t *testing.T) {
	m := newTestModel(t, Config{NoColor: true})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
}

func TestEmptyQueryListsAllKeys(t *testing.T) {
	m := newTestModel(t, Config{NoColor: true})
	out := viewString(m)
	assert.Contains(t, out, "All keys (6)")
	assert.Contains(t, out, "hello.from.your.favourite.yaml")
}

func TestNoMatchNotice(t *testing.T) {
	m := newTestModel(t, Config{NoColor: true})
	typeString(m, "zzz")
	out := viewString(m)
	assert.Contains(t, out, `No keys match "zzz"`)
}
