package boxprogress

import (
	"math"
	"sync/atomic"
)

type (
	// Gauge is the caller-owned progress value the render loop polls.
	// Load must not block.
	Gauge interface {
		Load() float64
	}

	// GaugeFunc adapts a plain function to a Gauge.
	GaugeFunc func() float64

	// Counter is a lock-free float64 progress value, safe to write from the
	// workload while the bar reads it. The zero value is 0.
	Counter struct {
		bits atomic.Uint64
	}
)

// Load calls f.
func (f GaugeFunc) Load() float64 {
	return f()
}

// Load returns the current value.
func (c *Counter) Load() float64 {
	return math.Float64frombits(c.bits.Load())
}

// Store sets the counter to v.
func (c *Counter) Store(v float64) {
	c.bits.Store(math.Float64bits(v))
}

// Add adds delta to the counter and returns the new value.
func (c *Counter) Add(delta float64) float64 {
	for {
		old := c.bits.Load()
		next := math.Float64frombits(old) + delta
		if c.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// Inc increments the counter by one.
func (c *Counter) Inc() {
	c.Add(1)
}
