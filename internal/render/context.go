// Package render implements placeholder substitution over strings, files,
// and directory trees. Placeholders are {{dotted.path}} expressions resolved
// against a Context; anything that does not resolve is left in the output
// verbatim, delimiters included.
package render

import (
	"fmt"
	"strings"
)

// Context is the tree of values available to placeholder resolution. Keys
// nest through maps; a dotted path descends one map per segment. A Context is
// built once per integration run and treated as immutable.
type Context map[string]interface{}

// Lookup resolves a dotted path by sequential descent. It returns false when
// any segment is missing, descends into a non-map, or lands on a nil value.
func (c Context) Lookup(path string) (interface{}, bool) {
	if path == "" {
		return nil, false
	}

	var current interface{} = map[string]interface{}(c)
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			return nil, false
		}

		m, ok := asMap(current)
		if !ok {
			return nil, false
		}

		next, ok := m[segment]
		if !ok || next == nil {
			return nil, false
		}
		current = next
	}

	return current, true
}

// Merge returns a new Context with the entries of other laid over c.
// Top-level keys only; nested maps are replaced, not merged.
func (c Context) Merge(other Context) Context {
	merged := make(Context, len(c)+len(other))
	for k, v := range c {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case Context:
		return map[string]interface{}(m), true
	case map[string]string:
		out := make(map[string]interface{}, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// stringify renders a resolved value into template output.
func stringify(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
