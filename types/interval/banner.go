package interval

import "time"

// Banners holds the three display variants a card can show. The variants are
// caller-supplied and opaque; a zero-valued variant is returned as-is rather
// than treated as an error.
type Banners[T any] struct {
	Live     T
	Upcoming T
	OnDemand T
}

// Classify picks the banner for a card at the given moment: Live while the
// window is open, Upcoming before it opens, and OnDemand after it closes.
// Unparseable bounds fall through to OnDemand, so the three outcomes are
// exhaustive for any input.
func Classify[T any](now time.Time, start, end string, b Banners[T]) T {
	if IsWithin(now, start, end) {
		return b.Live
	}

	if IsBefore(now, start) {
		return b.Upcoming
	}

	return b.OnDemand
}
