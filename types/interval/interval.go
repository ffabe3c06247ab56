// Package interval classifies a moment in time against the start/end window
// of a card. All inputs arrive as strings from upstream data; anything that
// fails to parse degrades to a false comparison instead of an error, so a
// malformed card can never halt a refresh loop.
package interval

import (
	"strconv"
	"strings"
	"time"
)

var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseInstant parses a date-like string to an instant. It accepts RFC3339
// timestamps (with or without zone), plain dates, and bare epoch-millisecond
// integers. The second return value reports whether the input was parseable.
func ParseInstant(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms), true
	}

	return ParseCalendar(s)
}

// ParseCalendar is the stricter variant of ParseInstant: it accepts the
// calendar layouts but not bare millisecond counts.
func ParseCalendar(s string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// IsWithin reports whether start <= now <= end. Boundary equality counts as
// within. An unparseable start or end yields false.
func IsWithin(now time.Time, start, end string) bool {
	s, ok := ParseInstant(start)
	if !ok {
		return false
	}

	e, ok := ParseInstant(end)
	if !ok {
		return false
	}

	return !now.Before(s) && !now.After(e)
}

// IsBefore reports whether now < start. An unparseable start yields false.
func IsBefore(now time.Time, start string) bool {
	s, ok := ParseInstant(start)
	if !ok {
		return false
	}

	return now.Before(s)
}
