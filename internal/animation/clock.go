// Package animation provides the time-sampled scalar primitives the layout
// engine drives every geometric transition with: a global clock, an easing
// curve, and a critically-parameterised spring integrator.
package animation

// Clock is the single time source every animation in the engine draws its
// base time from. The compositor calls AdvanceTo once per frame before
// sampling or snapshotting; nothing else mutates it.
type Clock struct {
	now float64 // milliseconds
}

// NewClock returns a clock parked at t=0.
func NewClock() *Clock {
	return &Clock{}
}

// AdvanceTo moves the clock forward. Calls with a t at or before the
// current time are no-ops: the clock never runs backwards.
func (c *Clock) AdvanceTo(t float64) {
	if t > c.now {
		c.now = t
	}
}

// Now returns the clock's current time in milliseconds.
func (c *Clock) Now() float64 {
	return c.now
}
