// Package resolver performs the three-tier path lookup: exact dotted
// walk, then suffix match over the key index, then prefix match.
package resolver

import (
	"strings"

	"github.com/oakwood-commons/kvq/internal/document"
)

// Kind tags the search result variant.
type Kind int

const (
	// NoMatch means no tier produced a result. It is a normal outcome,
	// not an error.
	NoMatch Kind = iota
	// Exact means the query walked to a truthy leaf value.
	Exact
	// SuffixMatch lists indexed keys ending with the query.
	SuffixMatch
	// PrefixMatch lists indexed keys starting with the query.
	PrefixMatch
)

func (k Kind) String() string {
	switch k {
	case Exact:
		return "exact"
	case SuffixMatch:
		return "suffix"
	case PrefixMatch:
		return "prefix"
	default:
		return "none"
	}
}

// Result is the tagged outcome of a resolve. Path and Value are set for
// Exact; Count and Keys for SuffixMatch and PrefixMatch.
type Result struct {
	Kind  Kind
	Path  string
	Value string
	Count int
	Keys  []string
}

// Resolve looks up query against the tree and its key index. Tier
// priority is strict: an exact hit shadows the suffix tier, and a suffix
// hit shadows the prefix tier. Suffix and prefix results keep index
// order (depth-first, parents before children).
//
// The exact tier only counts truthy leaf values as found. Falsy leaves
// (empty string, zero, false, null) and compound values fall through to
// the match tiers; a path holding a stored `false` or naming an
// intermediate mapping is reachable only through the match listings.
// Inherited matching behavior, kept for compatibility.
func Resolve(query string, root *document.Node, index []string) Result {
	if node, ok := walkExact(root, query); ok && node.Kind == document.Scalar && node.Truthy() {
		return Result{Kind: Exact, Path: query, Value: document.Pretty(node)}
	}

	// The suffix tier skips the key equal to the query itself: the exact
	// tier already judged it, and suggesting it back would be noise.
	if keys := filterIndex(index, query, func(key, q string) bool {
		return key != q && strings.HasSuffix(key, q)
	}); len(keys) > 0 {
		return Result{Kind: SuffixMatch, Count: len(keys), Keys: keys}
	}

	if keys := filterIndex(index, query, strings.HasPrefix); len(keys) > 0 {
		return Result{Kind: PrefixMatch, Count: len(keys), Keys: keys}
	}

	return Result{Kind: NoMatch}
}

// Lookup re-resolves a dotted path against the tree, ignoring the
// truthiness policy. Used to display values for suffix/prefix matches,
// which are looked up fresh rather than cached at index time.
func Lookup(root *document.Node, path string) (*document.Node, bool) {
	return walkExact(root, path)
}

// walkExact splits the query on '.' and descends through mapping
// children segment by segment.
func walkExact(root *document.Node, query string) (*document.Node, bool) {
	if query == "" {
		return nil, false
	}
	cur := root
	for _, seg := range strings.Split(query, ".") {
		child, ok := cur.Get(seg)
		if !ok {
			return nil, false
		}
		cur = child
	}
	return cur, true
}

func filterIndex(index []string, query string, match func(s, affix string) bool) []string {
	var keys []string
	for _, path := range index {
		if match(path, query) {
			keys = append(keys, path)
		}
	}
	return keys
}
