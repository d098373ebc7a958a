package virtual

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/soar/padbridge/internal/element"
	"github.com/soar/padbridge/internal/ffb"
	"github.com/soar/padbridge/internal/mapper"
	"github.com/soar/padbridge/internal/physical"
)

// Controller presents one physical controller as a virtual device shaped by
// a device map. A background goroutine started at construction keeps the
// virtual state synchronized with the physical device until Close. All
// public operations are safe from any goroutine and never block.
type Controller struct {
	id        physical.ControllerID
	instance  uuid.UUID
	deviceMap *mapper.DeviceMap
	source    physical.Source
	registry  *physical.ForceFeedbackRegistry
	caps      element.Capabilities

	mu             sync.Mutex
	stateRaw       element.State
	stateProcessed element.State
	axisProps      [element.AxisCount]axisProperties
	ffGain         uint32
	ffDevice       *ffb.Device
	events         eventBuffer
	filter         eventFilter

	notify    chan struct{}
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a virtual controller for the given physical controller slot
// and starts its synchronization goroutine.
func New(id physical.ControllerID, m *mapper.DeviceMap, src physical.Source, reg *physical.ForceFeedbackRegistry) *Controller {
	c := &Controller{
		id:        id,
		instance:  uuid.New(),
		deviceMap: m.Clone(),
		source:    src,
		registry:  reg,
		caps:      m.Capabilities(),
		ffGain:    ffb.GainMaximum,
		events:    newEventBuffer(),
		filter:    newEventFilter(),
		notify:    make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	for a := range c.axisProps {
		c.axisProps[a] = defaultAxisProperties()
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	go c.run(ctx)
	return c
}

// Close stops the background goroutine, waits for it to exit and releases
// any force-feedback registration. Idempotent.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		c.cancel()
		<-c.done
		c.UnregisterForForceFeedback()
	})
}

// Identifier returns the physical controller slot this virtual controller
// wraps.
func (c *Controller) Identifier() physical.ControllerID { return c.id }

// Instance returns the unique identity of this virtual controller instance.
func (c *Controller) Instance() uuid.UUID { return c.instance }

// Capabilities returns the controller's shape: present axes, button count
// and POV flag. Immutable.
func (c *Controller) Capabilities() element.Capabilities { return c.caps }

// DeviceMap returns the device map in effect.
func (c *Controller) DeviceMap() *mapper.DeviceMap { return c.deviceMap }

// StateChangeNotifications returns a channel that receives a signal after
// each published state change. Signals are dropped, not queued, while the
// consumer is behind.
func (c *Controller) StateChangeNotifications() <-chan struct{} { return c.notify }

func (c *Controller) run(ctx context.Context) {
	defer close(c.done)

	last := c.source.CurrentState(c.id)
	c.RefreshState(last)

	for {
		if !c.source.WaitForStateChange(ctx, c.id, last) {
			return
		}
		last = c.source.CurrentState(c.id)
		c.RefreshState(last)
	}
}

// RefreshState aggregates one physical reading through the device map and,
// if the result differs from the current raw view, publishes it: the
// processed view is recomputed, filtered change events are appended, and the
// notification channel is signalled. Idempotent on unchanged input. This is
// the only path by which raw physical state becomes visible.
//
// A reading with a non-OK status carries no input: the last good virtual
// state is held while the wait loop backs off.
func (c *Controller) RefreshState(raw physical.State) bool {
	if raw.Status != physical.StatusOK {
		return false
	}

	// Mapper side effects (keyboard/mouse submissions) happen outside the
	// controller lock.
	next := c.deviceMap.Map(c.id, raw)

	c.mu.Lock()
	if next == c.stateRaw {
		c.mu.Unlock()
		return false
	}

	previous := c.stateProcessed
	c.stateRaw = next
	c.stateProcessed = c.applyPropertiesLocked(next)
	c.appendChangeEventsLocked(previous, c.stateProcessed)
	c.mu.Unlock()

	select {
	case c.notify <- struct{}{}:
	default:
	}
	return true
}

// GetState returns the processed virtual state without blocking.
func (c *Controller) GetState() element.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateProcessed
}

// UnprocessedState returns the aggregated state before property transforms,
// for diagnostics and testing.
func (c *Controller) UnprocessedState() element.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateRaw
}

func (c *Controller) applyPropertiesLocked(s element.State) element.State {
	for a := element.AxisX; a < element.AxisCount; a++ {
		s.Axes[a] = c.axisProps[a].transform(s.Axes[a])
	}
	return s
}

func (c *Controller) appendChangeEventsLocked(previous, current element.State) {
	timestamp := uint64(time.Now().UnixMilli())
	for _, id := range element.AllIdentifiers() {
		if !c.caps.HasElement(id) || !c.filter.contains(id) {
			continue
		}
		v := current.Value(id)
		if v == previous.Value(id) {
			continue
		}
		c.events.append(Event{Element: id, Value: v, Timestamp: timestamp})
	}
}

// reapplyPropertiesLocked refreshes the processed view after a property
// change. Property changes do not generate events.
func (c *Controller) reapplyPropertiesLocked() {
	c.stateProcessed = c.applyPropertiesLocked(c.stateRaw)
}

// AxisDeadzone returns the deadzone percentage for an axis.
func (c *Controller) AxisDeadzone(a element.Axis) uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.axisDeadzoneLocked(a)
}

func (c *Controller) axisDeadzoneLocked(a element.Axis) uint32 {
	if a < 0 || a >= element.AxisCount {
		return 0
	}
	return c.axisProps[a].deadzone
}

// SetAxisDeadzone sets one axis's deadzone percentage. Rejects out-of-range
// values with no state change.
func (c *Controller) SetAxisDeadzone(a element.Axis, v uint32) bool {
	if a < 0 || a >= element.AxisCount || !validPercent(v) {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.axisProps[a].deadzone = v
	c.axisProps[a].recompute()
	c.reapplyPropertiesLocked()
	return true
}

// SetAllAxesDeadzone sets every axis's deadzone percentage atomically.
func (c *Controller) SetAllAxesDeadzone(v uint32) bool {
	if !validPercent(v) {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for a := range c.axisProps {
		c.axisProps[a].deadzone = v
		c.axisProps[a].recompute()
	}
	c.reapplyPropertiesLocked()
	return true
}

// AxisSaturation returns the saturation percentage for an axis.
func (c *Controller) AxisSaturation(a element.Axis) uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.axisSaturationLocked(a)
}

func (c *Controller) axisSaturationLocked(a element.Axis) uint32 {
	if a < 0 || a >= element.AxisCount {
		return 0
	}
	return c.axisProps[a].saturation
}

// SetAxisSaturation sets one axis's saturation percentage.
func (c *Controller) SetAxisSaturation(a element.Axis, v uint32) bool {
	if a < 0 || a >= element.AxisCount || !validPercent(v) {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.axisProps[a].saturation = v
	c.axisProps[a].recompute()
	c.reapplyPropertiesLocked()
	return true
}

// SetAllAxesSaturation sets every axis's saturation percentage atomically.
func (c *Controller) SetAllAxesSaturation(v uint32) bool {
	if !validPercent(v) {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for a := range c.axisProps {
		c.axisProps[a].saturation = v
		c.axisProps[a].recompute()
	}
	c.reapplyPropertiesLocked()
	return true
}

// AxisRange returns an axis's configured output range.
func (c *Controller) AxisRange(a element.Axis) (min, max int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.axisRangeLocked(a)
}

func (c *Controller) axisRangeLocked(a element.Axis) (min, max int32) {
	if a < 0 || a >= element.AxisCount {
		return 0, 0
	}
	return c.axisProps[a].rangeMin, c.axisProps[a].rangeMax
}

// SetAxisRange sets one axis's output range. Requires min < max.
func (c *Controller) SetAxisRange(a element.Axis, min, max int32) bool {
	if a < 0 || a >= element.AxisCount || min >= max {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.axisProps[a].rangeMin = min
	c.axisProps[a].rangeMax = max
	c.axisProps[a].recompute()
	c.reapplyPropertiesLocked()
	return true
}

// SetAllAxesRange sets every axis's output range atomically.
func (c *Controller) SetAllAxesRange(min, max int32) bool {
	if min >= max {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for a := range c.axisProps {
		c.axisProps[a].rangeMin = min
		c.axisProps[a].rangeMax = max
		c.axisProps[a].recompute()
	}
	c.reapplyPropertiesLocked()
	return true
}

// AxisTransformEnabled reports whether the property transform applies to an
// axis.
func (c *Controller) AxisTransformEnabled(a element.Axis) bool {
	if a < 0 || a >= element.AxisCount {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.axisProps[a].transformEnabled
}

// SetAxisTransformEnabled enables or disables the property transform for an
// axis. Disabled axes pass the raw value through unchanged.
func (c *Controller) SetAxisTransformEnabled(a element.Axis, enabled bool) bool {
	if a < 0 || a >= element.AxisCount {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.axisProps[a].transformEnabled = enabled
	c.reapplyPropertiesLocked()
	return true
}

// ForceFeedbackGain returns the device force-feedback gain.
func (c *Controller) ForceFeedbackGain() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ffGain
}

// SetForceFeedbackGain sets the device force-feedback gain. Rejects
// out-of-range values with no state change.
func (c *Controller) SetForceFeedbackGain(v uint32) bool {
	if !validPercent(v) {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ffGain = v
	if c.ffDevice != nil {
		c.ffDevice.SetGain(v)
	}
	return true
}

// RegisterForForceFeedback attempts to claim exclusive force-feedback
// ownership of the underlying physical controller. Fails without blocking if
// another virtual controller already holds it; succeeds idempotently if this
// controller already does.
func (c *Controller) RegisterForForceFeedback() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ffDevice != nil {
		return true
	}
	dev := ffb.NewDevice(c.deviceMap.Actuators())
	dev.SetGain(c.ffGain)
	if !c.registry.Register(c.id, dev) {
		return false
	}
	c.ffDevice = dev
	return true
}

// UnregisterForForceFeedback releases this controller's force-feedback
// registration. Idempotent.
func (c *Controller) UnregisterForForceFeedback() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ffDevice == nil {
		return
	}
	c.registry.Unregister(c.id, c.ffDevice)
	c.ffDevice = nil
}

// ForceFeedbackIsRegistered reports whether this controller currently owns
// the physical device's force feedback.
func (c *Controller) ForceFeedbackIsRegistered() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ffDevice != nil
}

// ForceFeedbackDevice returns the registered force-feedback device, or nil.
func (c *Controller) ForceFeedbackDevice() *ffb.Device {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ffDevice
}

// EventBufferCapacity returns the event buffer's capacity.
func (c *Controller) EventBufferCapacity() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events.capacity
}

// SetEventBufferCapacity resizes the event buffer (1..MaxEventBufferCapacity).
func (c *Controller) SetEventBufferCapacity(n int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events.setCapacity(n)
}

// SetEventBufferEnabled enables or disables event buffering. Disabling
// discards pending events.
func (c *Controller) SetEventBufferEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events.setEnabled(enabled)
}

// EventCount returns the number of buffered events.
func (c *Controller) EventCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events.count()
}

// EventAt reads the i-th oldest buffered event without removing it.
func (c *Controller) EventAt(i int) (Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events.at(i)
}

// PopEvents removes and returns up to n of the oldest buffered events and
// clears the overflow flag.
func (c *Controller) PopEvents(n int) []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events.popOldest(n)
}

// EventBufferOverflowed reports whether events were dropped since the last
// pop.
func (c *Controller) EventBufferOverflowed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events.overflowed
}

// EventFilterContains reports whether the element currently produces events.
func (c *Controller) EventFilterContains(id element.Identifier) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter.contains(id)
}

// EventFilterAdd admits one element (or all, for the whole-controller
// identifier) to the event filter.
func (c *Controller) EventFilterAdd(id element.Identifier) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter.add(id)
}

// EventFilterRemove removes one element (or all, for the whole-controller
// identifier) from the event filter.
func (c *Controller) EventFilterRemove(id element.Identifier) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter.remove(id)
}
