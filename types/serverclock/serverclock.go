// Package serverclock derives "now" from a server-supplied time anchor.
//
// A page may carry a servertime query parameter holding the server's epoch
// milliseconds at render time. That value is fixed while real time keeps
// advancing, so the clock keeps a differential that grows by one second per
// elapsed second and adds it to the anchor on every read. Without the
// parameter the clock is just the wall clock.
package serverclock

import (
	"net/url"
	"strconv"
	"sync/atomic"
	"time"
)

// Param is the query parameter the clock reads its anchor from.
const Param = "servertime"

type Option func(*Clock)

// WithNowFunc overrides the wall-clock source, for tests.
func WithNowFunc(fn func() time.Time) Option {
	return func(c *Clock) {
		c.now = fn
	}
}

// WithTickInterval overrides how often Start advances the differential.
// Each tick still represents one elapsed second.
func WithTickInterval(d time.Duration) Option {
	return func(c *Clock) {
		c.interval = d
	}
}

// Clock produces the current instant, anchored to servertime when present.
// The query source is injected once at construction; the parameter value is
// read on every call to Now.
type Clock struct {
	query    url.Values
	now      func() time.Time
	interval time.Duration

	// differential is in milliseconds. It is written by the ticker
	// goroutine and read by Now.
	differential atomic.Int64
}

func New(query url.Values, opts ...Option) *Clock {
	c := &Clock{
		query:    query,
		now:      time.Now,
		interval: time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Now returns the anchored instant when a non-zero servertime parameter is
// present, and the wall clock otherwise. A missing or malformed parameter is
// treated as absent, never as an error.
func (c *Clock) Now() time.Time {
	ms, err := strconv.ParseInt(c.query.Get(Param), 10, 64)
	if err != nil || ms == 0 {
		return c.now()
	}

	return time.UnixMilli(ms + c.differential.Load())
}

// Tick advances the differential by one second. Start calls this on every
// ticker fire; tests call it directly to simulate elapsed time.
func (c *Clock) Tick() {
	c.differential.Add(time.Second.Milliseconds())
}

// Differential returns the accumulated drift compensation.
func (c *Clock) Differential() time.Duration {
	return time.Duration(c.differential.Load()) * time.Millisecond
}

// Start launches the ticker goroutine. It runs for the life of the process;
// there is no stop, matching the page-lifetime semantics of the original
// timer.
func (c *Clock) Start() {
	go func() {
		t := time.NewTicker(c.interval)
		for range t.C {
			c.Tick()
		}
	}()
}
