// Package document defines the parsed representation of an input
// document: a tree of tagged nodes (scalar, sequence, mapping). Mapping
// entries keep document order so key enumeration is deterministic.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"
)

// Kind discriminates the three node variants.
type Kind int

const (
	// Scalar is a leaf value: string, number, bool, or null.
	Scalar Kind = iota
	// Sequence is an ordered list of nodes.
	Sequence
	// Mapping is an ordered set of string-keyed entries.
	Mapping
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Sequence:
		return "sequence"
	case Mapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Entry is one key/value pair of a mapping node.
type Entry struct {
	Key   string
	Value *Node
}

// Node is a single node of the document tree. Exactly one of the payload
// fields is meaningful, selected by Kind.
type Node struct {
	Kind    Kind
	Value   interface{} // Scalar payload
	Items   []*Node     // Sequence payload
	Entries []Entry     // Mapping payload, in document order
}

// Get returns the mapping child for key. Returns false for missing keys
// and for non-mapping nodes.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != Mapping {
		return nil, false
	}
	for _, e := range n.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Truthy reports whether the node counts as a found value. Mappings and
// sequences are always truthy, even when empty. Scalars follow the
// inherited lookup policy: empty string, numeric zero, false, and null
// are not truthy.
func (n *Node) Truthy() bool {
	if n == nil {
		return false
	}
	if n.Kind != Scalar {
		return true
	}
	switch v := n.Value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	}
	rv := reflect.ValueOf(n.Value)
	switch rv.Kind() { //nolint:exhaustive // only numeric kinds matter here
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	}
	return true
}

// MarshalJSON renders the node as compact JSON, preserving mapping order.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	switch n.Kind {
	case Scalar:
		return json.Marshal(n.Value)
	case Sequence:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range n.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := json.Marshal(item)
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case Mapping:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, e := range n.Entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(e.Key)
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			v, err := json.Marshal(e.Value)
			if err != nil {
				return nil, err
			}
			buf.Write(v)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown node kind %d", n.Kind)
	}
}

// Pretty serializes a node as pretty-printed text with 2-space
// indentation. Scalar strings come out quoted, matching the display
// format of the value panel.
func Pretty(n *Node) string {
	b, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", n)
	}
	return string(b)
}

// FromYAML converts a decoded yaml.Node into a document Node, resolving
// document wrappers and aliases. Mapping order follows the source text.
func FromYAML(y *yaml.Node) (*Node, error) {
	if y == nil {
		return &Node{Kind: Scalar, Value: nil}, nil
	}
	switch y.Kind {
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return &Node{Kind: Scalar, Value: nil}, nil
		}
		return FromYAML(y.Content[0])
	case yaml.AliasNode:
		return FromYAML(y.Alias)
	case yaml.MappingNode:
		n := &Node{Kind: Mapping, Entries: make([]Entry, 0, len(y.Content)/2)}
		for i := 0; i+1 < len(y.Content); i += 2 {
			child, err := FromYAML(y.Content[i+1])
			if err != nil {
				return nil, err
			}
			n.Entries = append(n.Entries, Entry{Key: y.Content[i].Value, Value: child})
		}
		return n, nil
	case yaml.SequenceNode:
		n := &Node{Kind: Sequence, Items: make([]*Node, 0, len(y.Content))}
		for _, c := range y.Content {
			child, err := FromYAML(c)
			if err != nil {
				return nil, err
			}
			n.Items = append(n.Items, child)
		}
		return n, nil
	case yaml.ScalarNode:
		var v interface{}
		if err := y.Decode(&v); err != nil {
			return nil, fmt.Errorf("decode scalar at line %d: %w", y.Line, err)
		}
		return &Node{Kind: Scalar, Value: v}, nil
	default:
		return nil, fmt.Errorf("unsupported yaml node kind %d at line %d", y.Kind, y.Line)
	}
}

// FromValue converts an already-decoded Go value (JSON/TOML decoder
// output) into a document Node. Go maps carry no order, so mapping keys
// are sorted for deterministic enumeration.
func FromValue(v interface{}) *Node {
	switch t := v.(type) {
	case nil:
		return &Node{Kind: Scalar, Value: nil}
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		n := &Node{Kind: Mapping, Entries: make([]Entry, 0, len(keys))}
		for _, k := range keys {
			n.Entries = append(n.Entries, Entry{Key: k, Value: FromValue(t[k])})
		}
		return n
	case []interface{}:
		n := &Node{Kind: Sequence, Items: make([]*Node, 0, len(t))}
		for _, item := range t {
			n.Items = append(n.Items, FromValue(item))
		}
		return n
	default:
		return &Node{Kind: Scalar, Value: v}
	}
}
