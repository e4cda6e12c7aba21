package flight

import "time"

// Ticker decides when the fixed simulation tick is due. It fires once the
// interval has elapsed since the last fire and restarts from "now" without
// carrying the remainder, so ticks run at most at 1/Interval and slower
// when frames are slow.
type Ticker struct {
	interval float64
	last     float64
}

// NewTicker starts counting from now, in seconds.
func NewTicker(interval time.Duration, now float64) *Ticker {
	return &Ticker{interval: interval.Seconds(), last: now}
}

// Due reports whether a tick should run at now.
func (t *Ticker) Due(now float64) bool {
	if now-t.last < t.interval {
		return false
	}
	t.last = now
	return true
}
