package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func mustFromYAML(t *testing.T, text string) *Node {
	t.Helper()
	var y yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(text), &y))
	n, err := FromYAML(&y)
	require.NoError(t, err)
	return n
}

func TestFromYAMLPreservesMappingOrder(t *testing.T) {
	n := mustFromYAML(t, "zebra: 1\napple: 2\nmango: 3\n")
	require.Equal(t, Mapping, n.Kind)
	keys := make([]string, 0, len(n.Entries))
	for _, e := range n.Entries {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"zebra", "apple", "mango"}, keys)
}

func TestFromYAMLKinds(t *testing.T) {
	n := mustFromYAML(t, `
name: box
tags: [a, b]
meta:
  empty: {}
count: 3
ratio: 1.5
on: true
gone: null
`)
	require.Equal(t, Mapping, n.Kind)

	name, ok := n.Get("name")
	require.True(t, ok)
	assert.Equal(t, Scalar, name.Kind)
	assert.Equal(t, "box", name.Value)

	tags, ok := n.Get("tags")
	require.True(t, ok)
	assert.Equal(t, Sequence, tags.Kind)
	assert.Len(t, tags.Items, 2)

	meta, ok := n.Get("meta")
	require.True(t, ok)
	require.Equal(t, Mapping, meta.Kind)
	empty, ok := meta.Get("empty")
	require.True(t, ok)
	assert.Equal(t, Mapping, empty.Kind)
	assert.Empty(t, empty.Entries)

	count, _ := n.Get("count")
	assert.Equal(t, 3, count.Value)
	ratio, _ := n.Get("ratio")
	assert.Equal(t, 1.5, ratio.Value)
	on, _ := n.Get("on")
	assert.Equal(t, true, on.Value)
	gone, _ := n.Get("gone")
	assert.Nil(t, gone.Value)
}

func TestFromYAMLResolvesAliases(t *testing.T) {
	n := mustFromYAML(t, "base: &b\n  port: 80\ncopy: *b\n")
	cp, ok := n.Get("copy")
	require.True(t, ok)
	port, ok := cp.Get("port")
	require.True(t, ok)
	assert.Equal(t, 80, port.Value)
}

func TestGetMissingAndNonMapping(t *testing.T) {
	n := mustFromYAML(t, "a: 1\n")
	_, ok := n.Get("b")
	assert.False(t, ok)

	leaf, _ := n.Get("a")
	_, ok = leaf.Get("anything")
	assert.False(t, ok)

	var nilNode *Node
	_, ok = nilNode.Get("a")
	assert.False(t, ok)
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want bool
	}{
		{"nil node", nil, false},
		{"null scalar", &Node{Kind: Scalar, Value: nil}, false},
		{"empty string", &Node{Kind: Scalar, Value: ""}, false},
		{"zero int", &Node{Kind: Scalar, Value: 0}, false},
		{"zero int64", &Node{Kind: Scalar, Value: int64(0)}, false},
		{"zero float", &Node{Kind: Scalar, Value: 0.0}, false},
		{"false", &Node{Kind: Scalar, Value: false}, false},
		{"non-empty string", &Node{Kind: Scalar, Value: "x"}, true},
		{"nonzero int", &Node{Kind: Scalar, Value: 7}, true},
		{"nonzero float", &Node{Kind: Scalar, Value: 0.1}, true},
		{"true", &Node{Kind: Scalar, Value: true}, true},
		{"empty mapping", &Node{Kind: Mapping}, true},
		{"empty sequence", &Node{Kind: Sequence}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.Truthy())
		})
	}
}

func TestPrettyScalarStringIsQuoted(t *testing.T) {
	n := &Node{Kind: Scalar, Value: "👋"}
	assert.Equal(t, `"👋"`, Pretty(n))
}

func TestPrettyMappingUsesTwoSpaceIndentAndDocumentOrder(t *testing.T) {
	n := mustFromYAML(t, "zebra: 1\napple: two\n")
	want := "{\n  \"zebra\": 1,\n  \"apple\": \"two\"\n}"
	assert.Equal(t, want, Pretty(n))
}

func TestFromValueSortsMapKeys(t *testing.T) {
	n := FromValue(map[string]interface{}{
		"zebra": 1,
		"apple": []interface{}{"x"},
	})
	require.Equal(t, Mapping, n.Kind)
	require.Len(t, n.Entries, 2)
	assert.Equal(t, "apple", n.Entries[0].Key)
	assert.Equal(t, "zebra", n.Entries[1].Key)
	assert.Equal(t, Sequence, n.Entries[0].Value.Kind)
}
