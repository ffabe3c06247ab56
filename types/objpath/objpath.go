// Package objpath reads and writes nested values in map[string]any documents
// using dotted paths, the shape filter state takes after a JSON decode.
package objpath

import "strings"

// Get returns the value at the dotted path. It reports false when any hop is
// missing or is not a nested map.
func Get(m map[string]any, path string) (any, bool) {
	keys := strings.Split(path, ".")
	for _, key := range keys[:len(keys)-1] {
		next, ok := m[key].(map[string]any)
		if !ok {
			return nil, false
		}

		m = next
	}

	v, ok := m[keys[len(keys)-1]]
	return v, ok
}

// GetOr returns the value at the dotted path, or the default when absent.
func GetOr[T any](m map[string]any, path string, defaultValue T) T {
	v, ok := Get(m, path)
	if !ok {
		return defaultValue
	}

	t, ok := v.(T)
	if !ok {
		return defaultValue
	}

	return t
}

// Set writes the value at the dotted path, creating intermediate maps as
// needed. A hop that exists but is not a map is overwritten.
func Set(m map[string]any, path string, v any) {
	keys := strings.Split(path, ".")
	for _, key := range keys[:len(keys)-1] {
		next, ok := m[key].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[key] = next
		}

		m = next
	}

	m[keys[len(keys)-1]] = v
}
