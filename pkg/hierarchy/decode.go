package hierarchy

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/sunburst/pkg/errors"
)

// ResultField is the top-level field of the input envelope holding the record.
// No other top-level fields are consumed.
const ResultField = "result"

// Input formats accepted by [Decode].
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Decode parses an input envelope in the given format and returns its record.
func Decode(data []byte, format string) (Record, error) {
	switch format {
	case FormatJSON, "":
		return DecodeJSON(data)
	case FormatYAML, "yml":
		return DecodeYAML(data)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported input format %q (must be json or yaml)", format)
	}
}

// FormatForPath returns the input format implied by a file extension.
// Unknown extensions default to JSON.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ReadFile reads and decodes the envelope stored at path.
func ReadFile(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(data, FormatForPath(path))
}

// =============================================================================
// JSON
// =============================================================================

// DecodeJSON reads the record from the "result" field of a JSON envelope.
//
// Objects become groups and numbers become leaves, in document order. Arrays
// are groups keyed by element index. Numeric strings are accepted as counts and
// null counts as zero; booleans and other strings are rejected.
func DecodeJSON(data []byte) (Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New(errors.ErrCodeInvalidRecord, "input is not valid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, errors.New(errors.ErrCodeInvalidRecord, "input must be a JSON object with a %q field", ResultField)
	}
	result := doc.Get(ResultField)
	if !result.Exists() {
		return nil, errors.New(errors.ErrCodeInvalidRecord, "missing %q field", ResultField)
	}
	if !result.IsObject() && !result.IsArray() {
		return nil, errors.New(errors.ErrCodeInvalidRecord, "%q must be an object", ResultField)
	}
	return decodeJSONRecord(result, ResultField)
}

func decodeJSONRecord(r gjson.Result, path string) (Record, error) {
	rec := Record{}
	index := make(map[string]int)

	var err error
	visit := func(key string, value gjson.Result) bool {
		var e Entry
		if e, err = decodeJSONEntry(key, value, path+"."+key); err != nil {
			return false
		}
		rec = rec.set(index, e)
		return true
	}

	if r.IsArray() {
		for i, v := range r.Array() {
			if !visit(strconv.Itoa(i), v) {
				break
			}
		}
	} else {
		r.ForEach(func(k, v gjson.Result) bool { return visit(k.String(), v) })
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func decodeJSONEntry(key string, v gjson.Result, path string) (Entry, error) {
	switch v.Type {
	case gjson.JSON:
		children, err := decodeJSONRecord(v, path)
		if err != nil {
			return Entry{}, err
		}
		return Group(key, children...), nil
	case gjson.Number:
		return finiteLeaf(key, v.Float(), v.Raw, path)
	case gjson.Null:
		return Leaf(key, 0), nil
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return Entry{}, errors.New(errors.ErrCodeInvalidRecord, "%s: count %q is not numeric", path, v.Str)
		}
		return finiteLeaf(key, f, v.Str, path)
	default:
		return Entry{}, errors.New(errors.ErrCodeInvalidRecord, "%s: count %s is not numeric", path, v.Raw)
	}
}

// =============================================================================
// YAML
// =============================================================================

// DecodeYAML reads the record from the "result" key of a YAML envelope.
// Mapping order is preserved; the value rules match [DecodeJSON].
func DecodeYAML(data []byte) (Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRecord, err, "input is not valid YAML")
	}
	root := resolveAlias(&doc)
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = resolveAlias(root.Content[0])
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.New(errors.ErrCodeInvalidRecord, "input must be a mapping with a %q key", ResultField)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != ResultField {
			continue
		}
		result := resolveAlias(root.Content[i+1])
		if result.Kind != yaml.MappingNode && result.Kind != yaml.SequenceNode {
			return nil, errors.New(errors.ErrCodeInvalidRecord, "%q must be a mapping", ResultField)
		}
		return decodeYAMLRecord(result, ResultField)
	}
	return nil, errors.New(errors.ErrCodeInvalidRecord, "missing %q key", ResultField)
}

func decodeYAMLRecord(n *yaml.Node, path string) (Record, error) {
	rec := Record{}
	index := make(map[string]int)

	if n.Kind == yaml.SequenceNode {
		for i, item := range n.Content {
			key := strconv.Itoa(i)
			e, err := decodeYAMLEntry(key, item, path+"."+key)
			if err != nil {
				return nil, err
			}
			rec = rec.set(index, e)
		}
		return rec, nil
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		e, err := decodeYAMLEntry(key, n.Content[i+1], path+"."+key)
		if err != nil {
			return nil, err
		}
		rec = rec.set(index, e)
	}
	return rec, nil
}

func decodeYAMLEntry(key string, n *yaml.Node, path string) (Entry, error) {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		children, err := decodeYAMLRecord(n, path)
		if err != nil {
			return Entry{}, err
		}
		return Group(key, children...), nil
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return Leaf(key, 0), nil
		case "!!int", "!!float":
			var f float64
			if err := n.Decode(&f); err != nil {
				return Entry{}, errors.Wrap(errors.ErrCodeInvalidRecord, err, "%s: count %q is not numeric", path, n.Value)
			}
			return finiteLeaf(key, f, n.Value, path)
		case "!!str":
			f, err := strconv.ParseFloat(strings.TrimSpace(n.Value), 64)
			if err != nil {
				return Entry{}, errors.New(errors.ErrCodeInvalidRecord, "%s: count %q is not numeric", path, n.Value)
			}
			return finiteLeaf(key, f, n.Value, path)
		}
	}
	return Entry{}, errors.New(errors.ErrCodeInvalidRecord, "%s: count %q is not numeric", path, n.Value)
}

// finiteLeaf rejects counts that are infinite or NaN, including ones that
// overflow float64 while parsing.
func finiteLeaf(key string, f float64, raw, path string) (Entry, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Entry{}, errors.New(errors.ErrCodeInvalidRecord, "%s: count %q is not a finite number", path, raw)
	}
	return Leaf(key, f), nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
