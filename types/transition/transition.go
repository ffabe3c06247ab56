// Package transition builds the queue of future display-state changes for a
// collection of time-bounded cards: a card going live at its start date, or
// off-air at its end date. The queue orders events by how soon they fire, so
// a refresh loop can sleep until the head event and rebuild from there.
package transition

import (
	"strconv"
	"time"

	"github.com/cardwall/core/types/interval"
)

// TimedItem is a card with optional start and end dates. An absent bound is
// the empty string. The scheduler only reads the bounds.
type TimedItem interface {
	StartAt() string
	EndAt() string
}

// Event is a future moment at which an item's display state changes.
// Item is nil for end events: the upstream contract does not retain which
// item ended, only that one does.
type Event struct {
	Item     TimedItem
	Priority time.Duration
}

type Option func(*builder)

// WithCorrectedEndTimes computes end-event priorities directly as the offset
// from now to the end date. The default path reproduces the upstream
// behavior, which mangles the offset through a second date parse and drops
// nearly every end event; see legacyEndOffset.
func WithCorrectedEndTimes() Option {
	return func(b *builder) {
		b.correctedEnds = true
	}
}

type builder struct {
	correctedEnds bool
}

// Build returns a fresh queue of the transitions that lie strictly in the
// future of now. The input slice is snapshotted and never mutated; items in
// the past or with unparseable bounds contribute no events. Rebuild from
// scratch whenever the collection changes.
func Build(items []TimedItem, now time.Time, opts ...Option) *Queue {
	var b builder
	for _, opt := range opts {
		opt(&b)
	}

	q := NewQueue()
	for _, item := range append([]TimedItem(nil), items...) {
		if d, ok := startOffset(item.StartAt(), now); ok && d > 0 {
			q.Push(Event{Item: item, Priority: d})
		}

		if item.EndAt() == "" {
			continue
		}

		d, ok := b.endOffset(item.EndAt(), now)
		if ok && d > 0 {
			q.Push(Event{Priority: d})
		}
	}

	return q
}

func startOffset(start string, now time.Time) (time.Duration, bool) {
	s, ok := interval.ParseInstant(start)
	if !ok {
		return 0, false
	}

	return s.Sub(now), true
}

func (b *builder) endOffset(end string, now time.Time) (time.Duration, bool) {
	if b.correctedEnds {
		return startOffset(end, now)
	}

	return legacyEndOffset(end, now)
}

// legacyEndOffset reproduces the upstream double parse: the millisecond
// offset from now to the end date is rendered back to a string and parsed
// again as a calendar date. A bare millisecond count is not a calendar date,
// so the parse fails and the end event is dropped for every realistic input.
// Kept as the default so schedules match the behavior callers already see.
func legacyEndOffset(end string, now time.Time) (time.Duration, bool) {
	e, ok := interval.ParseInstant(end)
	if !ok {
		return 0, false
	}

	raw := strconv.FormatInt(e.Sub(now).Milliseconds(), 10)
	t, ok := interval.ParseCalendar(raw)
	if !ok {
		return 0, false
	}

	return time.Duration(t.UnixMilli()) * time.Millisecond, true
}
