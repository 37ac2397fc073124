// Package session holds the per-session state: the current document
// text, its parsed tree and key index, the live query, and the
// comparison string. State is explicit so multiple independent sessions
// can coexist and each component stays unit-testable.
package session

import (
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/kvq/internal/diff"
	"github.com/oakwood-commons/kvq/internal/document"
	"github.com/oakwood-commons/kvq/internal/keyindex"
	"github.com/oakwood-commons/kvq/internal/resolver"
	"github.com/oakwood-commons/kvq/pkg/loader"
)

// Session is the single mutable state object. The tree and index are
// replaced wholesale on every successful parse; query and comparison are
// replaced wholesale on every edit.
type Session struct {
	log *logr.Logger

	text    string
	tree    *document.Node
	index   []string
	version int

	query      string
	comparison string

	// diagnostic is the message of the last rejected document edit,
	// cleared on the next successful parse.
	diagnostic string
}

// New returns an empty session. Callers seed it with SetDocument
// (typically loader.SampleDocument) before first use.
func New(log *logr.Logger) *Session {
	if log == nil {
		log = &logr.Logger{}
	}
	return &Session{log: log}
}

// SetDocument parses text and replaces the tree and key index. On a
// parse failure the previous document, tree, and index stay untouched:
// the last good state is sticky. The failure is logged for the operator
// and recorded as the session diagnostic.
func (s *Session) SetDocument(text string) error {
	tree, err := loader.Parse(text)
	if err != nil {
		s.diagnostic = err.Error()
		s.log.Error(err, "document rejected, keeping previous state")
		return err
	}
	s.text = text
	s.tree = tree
	s.index = keyindex.Index(tree)
	s.version++
	s.diagnostic = ""
	return nil
}

// Text returns the last successfully parsed document text.
func (s *Session) Text() string { return s.text }

// Document returns the current tree, or nil before the first successful parse.
func (s *Session) Document() *document.Node { return s.tree }

// Index returns the current key index.
func (s *Session) Index() []string { return s.index }

// Version increments on every document replacement.
func (s *Session) Version() int { return s.version }

// Diagnostic returns the last parse failure message, or "" when the most
// recent edit parsed cleanly.
func (s *Session) Diagnostic() string { return s.diagnostic }

// SetQuery replaces the query string.
func (s *Session) SetQuery(q string) { s.query = q }

// Query returns the current query string.
func (s *Session) Query() string { return s.query }

// SetComparison replaces the comparison string.
func (s *Session) SetComparison(c string) { s.comparison = c }

// Comparison returns the current comparison string.
func (s *Session) Comparison() string { return s.comparison }

// Result resolves the current query. The second return is false when the
// query is empty: "no query yet" is distinct from a NoMatch result.
func (s *Session) Result() (resolver.Result, bool) {
	if s.query == "" {
		return resolver.Result{}, false
	}
	return resolver.Resolve(s.query, s.tree, s.index), true
}

// Diff compares the exact-match value against the comparison string. The
// second return is false when there is no exact match or no comparison
// string to compare against.
func (s *Session) Diff() (diff.Result, bool) {
	res, ok := s.Result()
	if !ok || res.Kind != resolver.Exact || s.comparison == "" {
		return diff.Result{}, false
	}
	return diff.Compare(res.Value, s.comparison), true
}
