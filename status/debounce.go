package status

import "sync"

// RenderIntervalMS is the default minimum spacing between keypress-driven
// redraws.
const RenderIntervalMS = 100

// Debouncer rate-limits keypress redraws. One instance is shared across
// every widget and both keypress event variants, so redraw cost stays
// bounded no matter how many displays are active.
type Debouncer struct {
	mu       sync.Mutex
	interval uint32
	last     uint32
	fired    bool
}

// NewDebouncer returns a debouncer with the given interval in milliseconds.
// A zero interval disables rate limiting.
func NewDebouncer(intervalMS uint32) *Debouncer {
	return &Debouncer{interval: intervalMS}
}

// ShouldRender reports whether a redraw may fire at the given monotonic
// time. The first call always fires; afterwards a call fires only when at
// least the interval has elapsed since the last fire, and firing moves the
// baseline. The subtraction is wraparound-safe across the uint32 rollover.
func (d *Debouncer) ShouldRender(now uint32) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fired && now-d.last < d.interval {
		return false
	}
	d.last = now
	d.fired = true
	return true
}
