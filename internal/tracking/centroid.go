// Package tracking finds a colored target in video frames and publishes its
// normalized centroid for the simulation to steer by.
package tracking

import (
	"fmt"
	"sync/atomic"
)

// Centroid is a frame-relative position, both axes in [0,1].
type Centroid struct {
	X, Y float32
}

func (c Centroid) String() string {
	return fmt.Sprintf("[%.3f, %.3f]", c.X, c.Y)
}

// Cell holds the most recent centroid. One goroutine stores, any number
// load; a load never blocks and always sees a complete value.
type Cell struct {
	v atomic.Pointer[Centroid]
}

func (c *Cell) Store(v Centroid) {
	c.v.Store(&v)
}

// Load returns the latest centroid, or false if none was stored yet.
func (c *Cell) Load() (Centroid, bool) {
	p := c.v.Load()
	if p == nil {
		return Centroid{}, false
	}
	return *p, true
}
