package virtual

import "github.com/soar/padbridge/internal/element"

// Guard holds the controller's state lock so a caller can take a consistent
// multi-field snapshot. Obtain with Acquire, read through the Guard's
// accessors only (the controller's own methods would deadlock), and Release
// on every exit path.
type Guard struct {
	c        *Controller
	released bool
}

// Acquire locks the controller and returns a Guard for consistent reads.
func (c *Controller) Acquire() *Guard {
	c.mu.Lock()
	return &Guard{c: c}
}

// Release unlocks the controller. Safe to call more than once.
func (g *Guard) Release() {
	if g.released {
		return
	}
	g.released = true
	g.c.mu.Unlock()
}

// State returns the processed virtual state.
func (g *Guard) State() element.State {
	return g.c.stateProcessed
}

// UnprocessedState returns the pre-transform aggregated state.
func (g *Guard) UnprocessedState() element.State {
	return g.c.stateRaw
}

// EventCount returns the number of buffered events.
func (g *Guard) EventCount() int {
	return g.c.events.count()
}

// EventAt reads the i-th oldest buffered event without removing it.
func (g *Guard) EventAt(i int) (Event, bool) {
	return g.c.events.at(i)
}

// EventBufferOverflowed reports whether events were dropped since the last
// pop.
func (g *Guard) EventBufferOverflowed() bool {
	return g.c.events.overflowed
}

// AxisDeadzone returns an axis's deadzone percentage.
func (g *Guard) AxisDeadzone(a element.Axis) uint32 {
	return g.c.axisDeadzoneLocked(a)
}

// AxisSaturation returns an axis's saturation percentage.
func (g *Guard) AxisSaturation(a element.Axis) uint32 {
	return g.c.axisSaturationLocked(a)
}

// AxisRange returns an axis's configured output range.
func (g *Guard) AxisRange(a element.Axis) (min, max int32) {
	return g.c.axisRangeLocked(a)
}

// ForceFeedbackGain returns the device force-feedback gain.
func (g *Guard) ForceFeedbackGain() uint32 {
	return g.c.ffGain
}
