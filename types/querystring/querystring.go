// Package querystring encodes filter state to a URL query string and decodes
// it back. The decoder is tolerant: a malformed pair keeps its raw text and
// decoding never fails, so a hand-edited URL still produces usable state.
package querystring

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Encode renders the values as a query string without the leading "?".
// Keys are sorted so equal states encode to equal strings; multi-valued keys
// repeat in slice order.
func Encode(values map[string][]string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var sb strings.Builder
	for _, k := range keys {
		for _, v := range values[k] {
			if sb.Len() > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(url.QueryEscape(k))
			sb.WriteByte('=')
			sb.WriteString(url.QueryEscape(v))
		}
	}

	return sb.String()
}

// Decode parses a query string, with or without the leading "?". Empty pairs
// are skipped, a pair without "=" becomes a key with an empty value, and a
// token whose escaping is broken is kept verbatim.
func Decode(query string) map[string][]string {
	query = strings.TrimPrefix(query, "?")

	values := make(map[string][]string)
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}

		key, value, _ := strings.Cut(pair, "=")
		values[unescape(key)] = append(values[unescape(key)], unescape(value))
	}

	return values
}

// Get returns the first value for the key.
func Get(values map[string][]string, key string) (string, bool) {
	vs, ok := values[key]
	if !ok || len(vs) == 0 {
		return "", false
	}

	return vs[0], true
}

// Int returns the first value for the key parsed as an integer.
func Int(values map[string][]string, key string) (int, bool) {
	s, ok := Get(values, key)
	if !ok {
		return 0, false
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return n, true
}

func unescape(s string) string {
	u, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}

	return u
}
