// Package keyindex enumerates every dotted key path reachable through
// mapping nodes of a document tree.
package keyindex

import "github.com/oakwood-commons/kvq/internal/document"

// Index lists all dotted paths in depth-first pre-order: each mapping
// entry's path is emitted before the entries of its value, so a parent
// always precedes all of its descendants. Scalars and sequences
// terminate a branch; their path is listed but not expanded.
//
// The result is a pure function of the tree and is recomputed only when
// the document is replaced, never per query keystroke.
func Index(root *document.Node) []string {
	if root == nil || root.Kind != document.Mapping {
		return nil
	}
	var paths []string
	walk(root, "", &paths)
	return paths
}

func walk(n *document.Node, prefix string, out *[]string) {
	for _, e := range n.Entries {
		path := e.Key
		if prefix != "" {
			path = prefix + "." + e.Key
		}
		*out = append(*out, path)
		if e.Value != nil && e.Value.Kind == document.Mapping {
			walk(e.Value, path, out)
		}
	}
}
