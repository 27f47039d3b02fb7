// Package tuning provides read access to the hierarchical camera tuning data
// that configures the per-frame control algorithms.
//
// Tuning files are schema-less YAML. Each algorithm reads only its own
// section, and every scalar is optional: a missing key is a valid state
// distinct from zero, so the typed accessors return (value, ok) pairs.
package tuning

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Tuning files are small; anything larger is a sign of a corrupt or wrong file.
const maxFileSize = 1 * 1024 * 1024 // 1MB

// Data is one node in the tuning hierarchy: a mapping, a list, or a scalar.
// The zero value behaves as an empty node whose lookups all miss.
type Data struct {
	raw interface{}
}

// Empty returns a node with no contents.
func Empty() *Data {
	return &Data{}
}

// Load reads and parses a tuning file. The path is validated to have a YAML
// extension and the file must be under the maximum size.
func Load(path string) (*Data, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("tuning file must have .yaml or .yml extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat tuning file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("tuning file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}

	return Parse(data)
}

// Parse parses raw YAML tuning data.
func Parse(b []byte) (*Data, error) {
	var raw interface{}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}
	return &Data{raw: raw}, nil
}

// Present reports whether the node holds anything at all.
func (d *Data) Present() bool {
	return d.raw != nil
}

// Get returns the child node for key. Missing keys and non-mapping nodes
// return an empty node, so lookups chain without nil checks.
func (d *Data) Get(key string) *Data {
	m, ok := d.raw.(map[string]interface{})
	if !ok {
		return Empty()
	}
	v, ok := m[key]
	if !ok {
		return Empty()
	}
	return &Data{raw: v}
}

// Keys returns the node's mapping keys in sorted order. Non-mapping nodes
// have no keys.
func (d *Data) Keys() []string {
	m, ok := d.raw.(map[string]interface{})
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// List returns the node's elements in file order when it is a YAML sequence.
func (d *Data) List() []*Data {
	s, ok := d.raw.([]interface{})
	if !ok {
		return nil
	}
	items := make([]*Data, len(s))
	for i, v := range s {
		items[i] = &Data{raw: v}
	}
	return items
}

// Int returns the node's value as an int.
func (d *Data) Int() (int, bool) {
	switch v := d.raw.(type) {
	case int:
		return v, true
	case int64:
		if v >= math.MinInt && v <= math.MaxInt {
			return int(v), true
		}
	}
	return 0, false
}

// Int16 returns the node's value as an int16. Out-of-range integers miss
// rather than wrap.
func (d *Data) Int16() (int16, bool) {
	v, ok := d.Int()
	if !ok || v < math.MinInt16 || v > math.MaxInt16 {
		return 0, false
	}
	return int16(v), true
}

// Float64 returns the node's value as a float64. Integers convert.
func (d *Data) Float64() (float64, bool) {
	switch v := d.raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// Bool returns the node's value as a bool.
func (d *Data) Bool() (bool, bool) {
	v, ok := d.raw.(bool)
	return v, ok
}

// String returns the node's value as a string.
func (d *Data) String() (string, bool) {
	v, ok := d.raw.(string)
	return v, ok
}
