// Package loader parses raw document text into the tagged tree defined
// by internal/document, auto-detecting the input format.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/kvq/internal/document"
)

// SampleDocument is loaded at startup so the tool is immediately usable.
const SampleDocument = `hello:
  from:
    your:
      favourite:
        yaml:
          tool: "👋"
`

// ParseError describes malformed input text. It is the only error kind
// this package produces; callers keep their previous good state when
// they see one.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse parses document text into a tree, auto-detecting format.
// Supports:
// - YAML: single document or multi-document (separated by ---)
// - JSON object/array (falls back to YAML on failure; YAML supersets JSON)
// - TOML: detected by section headers or a majority of key = value lines
func Parse(input string) (*document.Node, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, &ParseError{Format: "document", Err: errors.New("empty input")}
	}

	if strings.HasPrefix(trimmed, "---") || strings.Contains(trimmed, "\n---") {
		return parseMultiDocYAML(input)
	}

	// TOML before JSON: "[section]" headers look like JSON arrays.
	if isLikelyTOML(trimmed) {
		return parseTOML(input)
	}

	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		if n, err := parseJSON(input); err == nil {
			return n, nil
		}
		// Not valid JSON; the YAML parser accepts flow-style collections
		// and produces a better diagnostic for near-JSON input.
	}

	return parseYAML(input)
}

// ParseFile reads a file and parses its contents.
func ParseFile(path string) (*document.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// parseYAML decodes a single YAML document through yaml.Node so mapping
// order survives into the tree.
func parseYAML(input string) (*document.Node, error) {
	var y yaml.Node
	if err := yaml.Unmarshal([]byte(input), &y); err != nil {
		return nil, &ParseError{Format: "YAML", Err: err}
	}
	n, err := document.FromYAML(&y)
	if err != nil {
		return nil, &ParseError{Format: "YAML", Err: err}
	}
	return n, nil
}

// parseMultiDocYAML decodes "---" separated YAML. A single document parses
// to its own root; multiple documents parse to a sequence of roots.
func parseMultiDocYAML(input string) (*document.Node, error) {
	dec := yaml.NewDecoder(strings.NewReader(input))
	var docs []*document.Node
	for {
		var y yaml.Node
		if err := dec.Decode(&y); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &ParseError{Format: "multi-document YAML", Err: err}
		}
		n, err := document.FromYAML(&y)
		if err != nil {
			return nil, &ParseError{Format: "multi-document YAML", Err: err}
		}
		docs = append(docs, n)
	}
	switch len(docs) {
	case 0:
		return nil, &ParseError{Format: "multi-document YAML", Err: errors.New("no documents found")}
	case 1:
		return docs[0], nil
	default:
		return &document.Node{Kind: document.Sequence, Items: docs}, nil
	}
}

func parseJSON(input string) (*document.Node, error) {
	var v interface{}
	if err := json.Unmarshal([]byte(input), &v); err != nil {
		return nil, &ParseError{Format: "JSON", Err: err}
	}
	return document.FromValue(v), nil
}

func parseTOML(input string) (*document.Node, error) {
	var v interface{}
	if err := toml.Unmarshal([]byte(input), &v); err != nil {
		return nil, &ParseError{Format: "TOML", Err: err}
	}
	return document.FromValue(v), nil
}

var (
	// TOML section headers: [server], [[items]], [database.credentials].
	// Excludes JSON arrays like [1, 2, 3].
	tomlSectionPattern = regexp.MustCompile(`^\s*\[{1,2}(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\]{1,2}\s*$`)
	// TOML key = value (not key: value, which is YAML).
	tomlKeyValuePattern = regexp.MustCompile(`^\s*(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\s*=\s*.+$`)
)

// isLikelyTOML returns true when the input has TOML section headers, or
// when a majority of its non-comment lines are key = value assignments.
func isLikelyTOML(input string) bool {
	keyValueCount := 0
	nonEmptyCount := 0
	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		nonEmptyCount++
		if tomlSectionPattern.MatchString(line) {
			return true
		}
		if tomlKeyValuePattern.MatchString(line) {
			keyValueCount++
		}
	}
	return nonEmptyCount > 0 && keyValueCount > nonEmptyCount/2
}
