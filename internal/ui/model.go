package ui

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/kvq/internal/formatter"
	"github.com/oakwood-commons/kvq/internal/resolver"
	"github.com/oakwood-commons/kvq/internal/session"
)

// Config carries presentation options into the model. LiveDocument flips
// the document field from blur-to-commit to keystroke-to-commit; it is a
// property of this layer, never of the resolver.
type Config struct {
	NoColor      bool
	LiveDocument bool
}

// focusArea identifies which input currently receives keystrokes.
type focusArea int

const (
	focusDocument focusArea = iota
	focusQuery
	focusComparison
)

// Model is the top-level bubbletea model: a document textarea, a live
// query input, a comparison input shown on exact matches, and the result
// and diff panels. All domain state lives in the session.
type Model struct {
	Session *session.Session
	Cfg     Config

	Doc        textarea.Model
	Query      textinput.Model
	Comparison textinput.Model
	Footer     FooterModel

	focus       focusArea
	width       int
	height      int
	helpVisible bool
	status      string
	quitting    bool
}

// InitialModel builds the model around an already-seeded session.
func InitialModel(sess *session.Session, cfg Config) Model {
	doc := textarea.New()
	doc.Placeholder = "Paste a YAML document here"
	doc.SetValue(sess.Text())
	doc.SetWidth(76)
	doc.SetHeight(8)

	qi := textinput.New()
	qi.Placeholder = "dotted.key.path"
	qi.CharLimit = 500
	qi.SetWidth(76)
	qi.Prompt = "❯ "
	qi.Focus()

	ci := textinput.New()
	ci.Placeholder = "text to compare against the value"
	ci.CharLimit = 500
	ci.SetWidth(76)
	ci.Prompt = "❯ "

	return Model{
		Session:    sess,
		Cfg:        cfg,
		Doc:        doc,
		Query:      qi,
		Comparison: ci,
		Footer:     NewFooterModel(cfg.NoColor),
		focus:      focusQuery,
		width:      80,
		height:     24,
	}
}

// Init starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update routes messages. Document edits commit on blur (tab/esc away)
// unless LiveDocument is set; query and comparison commit per keystroke.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyLayout()
		return m, nil

	case tea.KeyMsg:
		keyStr := msg.String()

		if m.helpVisible {
			switch keyStr {
			case "f1", "esc":
				m.helpVisible = false
			case "ctrl+c":
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}

		switch keyStr {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "f1":
			m.helpVisible = true
			return m, nil
		case "tab":
			m.cycleFocus(1)
			return m, nil
		case "shift+tab":
			m.cycleFocus(-1)
			return m, nil
		case "esc":
			if m.focus == focusDocument {
				m.commitDocument()
				m.setFocus(focusQuery)
				return m, nil
			}
			// Clear the focused single-line input.
			if m.focus == focusQuery {
				m.Query.SetValue("")
				m.Session.SetQuery("")
			} else {
				m.Comparison.SetValue("")
				m.Session.SetComparison("")
			}
			return m, nil
		}
	}

	return m, m.updateFocused(msg)
}

// updateFocused forwards a message to the focused widget and syncs the
// session afterwards.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusDocument:
		m.Doc, cmd = m.Doc.Update(msg)
		if m.Cfg.LiveDocument {
			m.commitDocument()
		}
	case focusQuery:
		m.Query, cmd = m.Query.Update(msg)
		m.Session.SetQuery(m.Query.Value())
	case focusComparison:
		m.Comparison, cmd = m.Comparison.Update(msg)
		m.Session.SetComparison(m.Comparison.Value())
	}
	return cmd
}

// commitDocument hands the textarea contents to the session. On a parse
// failure the previous tree and index stay live and the diagnostic lands
// in the status line.
func (m *Model) commitDocument() {
	if err := m.Session.SetDocument(m.Doc.Value()); err != nil {
		m.status = m.Session.Diagnostic()
		return
	}
	m.status = ""
}

func (m *Model) cycleFocus(dir int) {
	fields := []focusArea{focusDocument, focusQuery}
	if m.exactResult() != nil {
		fields = append(fields, focusComparison)
	}
	cur := 0
	for i, f := range fields {
		if f == m.focus {
			cur = i
			break
		}
	}
	next := fields[((cur+dir)%len(fields)+len(fields))%len(fields)]
	m.setFocus(next)
}

func (m *Model) setFocus(f focusArea) {
	if m.focus == focusDocument && f != focusDocument && !m.Cfg.LiveDocument {
		m.commitDocument()
	}
	m.focus = f
	m.Doc.Blur()
	m.Query.Blur()
	m.Comparison.Blur()
	switch f {
	case focusDocument:
		m.Doc.Focus()
	case focusQuery:
		m.Query.Focus()
	case focusComparison:
		m.Comparison.Focus()
	}
}

// exactResult returns the current result when it is an exact match.
func (m *Model) exactResult() *resolver.Result {
	res, ok := m.Session.Result()
	if !ok || res.Kind != resolver.Exact {
		return nil
	}
	return &res
}

func (m *Model) applyLayout() {
	innerWidth := m.width - 4
	if innerWidth < 40 {
		innerWidth = 40
	}
	m.Doc.SetWidth(innerWidth)
	docHeight := 8
	if m.height < 24 {
		docHeight = 5
	}
	m.Doc.SetHeight(docHeight)
	m.Query.SetWidth(innerWidth)
	m.Comparison.SetWidth(innerWidth)
	m.Footer.Width = m.width
}

// View assembles the full screen.
func (m *Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}
	var body string
	if m.helpVisible {
		body = m.helpView()
	} else {
		body = m.mainView()
	}
	v := tea.NewView(body)
	v.AltScreen = true
	return v
}

func (m *Model) mainView() string {
	th := CurrentTheme()
	var b strings.Builder

	title := " kvq — dotted key lookup "
	if !m.Cfg.NoColor {
		title = lipgloss.NewStyle().Bold(true).Foreground(th.TitleFG).Background(th.TitleBG).Render(title)
	}
	b.WriteString(title + "\n\n")

	b.WriteString(m.label("Document") + m.commitHint() + "\n")
	b.WriteString(m.Doc.View() + "\n")
	if m.status != "" {
		b.WriteString(m.styled(m.status, th.StatusError) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(m.label("Key") + "\n")
	b.WriteString(m.Query.View() + "\n\n")

	b.WriteString(m.resultView())

	b.WriteString("\n" + m.Footer.View(m.focus, m.Cfg.LiveDocument))
	return b.String()
}

func (m *Model) commitHint() string {
	if m.Cfg.LiveDocument {
		return ""
	}
	hint := "  (parsed when you leave the field)"
	if m.Cfg.NoColor {
		return hint
	}
	return lipgloss.NewStyle().Foreground(CurrentTheme().SeparatorColor).Render(hint)
}

// resultView renders one presentation per result variant. With no query
// yet, the whole key index is listed so the tool is useful immediately.
func (m *Model) resultView() string {
	th := CurrentTheme()
	res, ok := m.Session.Result()
	if !ok {
		index := m.Session.Index()
		header := m.styled(fmt.Sprintf("All keys (%d)", len(index)), th.StatusInfo)
		return header + "\n" + m.matchTable(index)
	}

	switch res.Kind {
	case resolver.Exact:
		var b strings.Builder
		b.WriteString(m.styled(res.Path, th.PathColor) + "\n")
		b.WriteString(indentBlock(res.Value, "  ") + "\n\n")
		b.WriteString(m.label("Compare") + "\n")
		b.WriteString(m.Comparison.View() + "\n")
		if d, ok := m.Session.Diff(); ok {
			b.WriteString("\n" + formatter.RenderDiff(d, m.Cfg.NoColor) + "\n")
		}
		return b.String()
	case resolver.SuffixMatch:
		header := m.styled(fmt.Sprintf("No exact match — %d key(s) ending in %q", res.Count, m.Session.Query()), th.StatusInfo)
		return header + "\n" + m.matchTable(res.Keys)
	case resolver.PrefixMatch:
		header := m.styled(fmt.Sprintf("No exact match — %d key(s) starting with %q", res.Count, m.Session.Query()), th.StatusInfo)
		return header + "\n" + m.matchTable(res.Keys)
	default:
		return m.styled(fmt.Sprintf("No keys match %q", m.Session.Query()), th.StatusError) + "\n"
	}
}

// matchTable renders keys with their freshly resolved values.
func (m *Model) matchTable(keys []string) string {
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		val := ""
		if node, ok := resolver.Lookup(m.Session.Document(), k); ok {
			val = formatter.Stringify(node)
		}
		rows = append(rows, []string{k, val})
	}
	keyWidth := 30
	valueWidth := m.width - keyWidth - 6
	return formatter.RenderRows(rows, m.Cfg.NoColor, keyWidth, valueWidth)
}

func (m *Model) helpView() string {
	lines := []string{
		"kvq help",
		"",
		"Type a dotted key path (e.g. hello.from.your.favourite.yaml.tool)",
		"to look up its value. When no exact key matches, kvq suggests",
		"indexed keys that end with — or start with — what you typed.",
		"",
		"On an exact match, a comparison field appears: paste any text to",
		"see a character-level diff against the found value.",
		"",
		"  tab / shift+tab   move between fields",
		"  esc               commit the document / clear an input",
		"  f1                toggle this help",
		"  ctrl+c            quit",
		"",
		"Press esc or f1 to close.",
	}
	return strings.Join(lines, "\n")
}

func (m *Model) label(s string) string {
	if m.Cfg.NoColor {
		return s
	}
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme().LabelColor).Render(s)
}

func (m *Model) styled(s string, c color.Color) string {
	if m.Cfg.NoColor {
		return s
	}
	return lipgloss.NewStyle().Foreground(c).Render(s)
}

func indentBlock(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}
