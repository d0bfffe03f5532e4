package table

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Resolve walks a dotted path ("a.b.c") through nested maps.
// Any absent key, nil value or non-map intermediate ends the walk with
// (nil, false). Resolve never panics and never returns an error.
func Resolve(record any, path string) (any, bool) {
	if record == nil || path == "" {
		return nil, false
	}

	cur := record
	for _, part := range strings.Split(path, ".") {
		next, ok := lookup(cur, part)
		if !ok {
			return nil, false
		}
		cur = next
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

// lookup reads one key from the map shapes records come in: native Go maps
// and the map[any]any that YAML decoding produces for nested mappings.
func lookup(v any, key string) (any, bool) {
	switch m := v.(type) {
	case map[string]any:
		val, ok := m[key]
		return val, ok && val != nil
	case map[any]any:
		val, ok := m[key]
		return val, ok && val != nil
	case map[string]string:
		val, ok := m[key]
		return val, ok
	default:
		return nil, false
	}
}

// FormatValue returns the default display form of a resolved value.
// nil renders as the empty string.
func FormatValue(v any) string {
	if v == nil {
		return ""
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}
