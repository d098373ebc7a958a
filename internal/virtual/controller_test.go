package virtual

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/soar/padbridge/internal/element"
	"github.com/soar/padbridge/internal/ffb"
	"github.com/soar/padbridge/internal/mapper"
	"github.com/soar/padbridge/internal/physical"
)

// pollSource is a physical source backed by settable in-memory state. The
// first WaitForStateChange call closes waiting, marking the point where the
// controller goroutine has finished its initial refresh.
type pollSource struct {
	mu      sync.Mutex
	states  [physical.MaxControllers]physical.State
	waiting chan struct{}
	once    sync.Once
}

func (f *pollSource) CurrentState(id physical.ControllerID) physical.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.states[id]
}

func (f *pollSource) WaitForStateChange(ctx context.Context, id physical.ControllerID, lastKnown physical.State) bool {
	f.once.Do(func() { close(f.waiting) })
	return physical.WaitByPolling(ctx, func() physical.State {
		return f.CurrentState(id)
	}, lastKnown)
}

func (f *pollSource) set(id physical.ControllerID, s physical.State) {
	f.mu.Lock()
	f.states[id] = s
	f.mu.Unlock()
}

func newTestController(t *testing.T) (*Controller, *pollSource) {
	t.Helper()
	src := &pollSource{waiting: make(chan struct{})}
	c := New(0, mapper.StandardGamepad(), src, &physical.ForceFeedbackRegistry{})
	t.Cleanup(c.Close)

	select {
	case <-src.waiting:
	case <-time.After(2 * time.Second):
		t.Fatal("controller goroutine never reached its wait loop")
	}
	return c, src
}

func waitNotify(t *testing.T, c *Controller) {
	t.Helper()
	select {
	case <-c.StateChangeNotifications():
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a state change notification")
	}
}

func TestControllerTracksPhysicalState(t *testing.T) {
	c, src := newTestController(t)

	var raw physical.State
	raw.Buttons.SetPressed(physical.ButtonA, true)
	raw.Sticks[physical.StickLeftX] = 15000
	src.set(0, raw)

	waitNotify(t, c)

	s := c.GetState()
	if !s.Buttons.Pressed(0) {
		t.Error("B1 should be pressed")
	}
	if s.Axes[element.AxisX] != 15000 {
		t.Errorf("X = %d, want 15000", s.Axes[element.AxisX])
	}
}

func TestRefreshStatePublishesOnce(t *testing.T) {
	c, _ := newTestController(t)

	var raw physical.State
	raw.Buttons.SetPressed(physical.ButtonB, true)

	if !c.RefreshState(raw) {
		t.Fatal("first refresh should publish")
	}
	if c.RefreshState(raw) {
		t.Error("identical refresh should not publish")
	}

	select {
	case <-c.StateChangeNotifications():
	default:
		t.Error("expected a pending notification")
	}

	events := c.PopEvents(c.EventCount())
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1: %+v", len(events), events)
	}
	if events[0].Element != element.ButtonIdentifier(1) || events[0].Value != 1 {
		t.Errorf("event = %+v, want B2 press", events[0])
	}
}

func TestReadErrorHoldsLastGoodState(t *testing.T) {
	c, _ := newTestController(t)

	var raw physical.State
	raw.Buttons.SetPressed(physical.ButtonA, true)
	raw.Sticks[physical.StickLeftX] = 15000
	if !c.RefreshState(raw) {
		t.Fatal("first refresh should publish")
	}
	c.PopEvents(c.EventCount())
	waitNotify(t, c)

	for _, status := range []physical.Status{physical.StatusReadError, physical.StatusDisconnected} {
		if c.RefreshState(physical.State{Status: status}) {
			t.Errorf("%v reading should not publish", status)
		}
	}

	s := c.GetState()
	if !s.Buttons.Pressed(0) {
		t.Error("B1 should still be pressed")
	}
	if s.Axes[element.AxisX] != 15000 {
		t.Errorf("X = %d, want 15000", s.Axes[element.AxisX])
	}
	if n := c.EventCount(); n != 0 {
		t.Errorf("error readings appended %d events", n)
	}
	select {
	case <-c.StateChangeNotifications():
		t.Error("error readings should not notify")
	default:
	}
}

func TestPropertyChangeRewritesStateWithoutEvents(t *testing.T) {
	c, _ := newTestController(t)

	var raw physical.State
	raw.Sticks[physical.StickLeftX] = 5000
	c.RefreshState(raw)
	c.PopEvents(c.EventCount())

	if !c.SetAxisDeadzone(element.AxisX, 5000) {
		t.Fatal("SetAxisDeadzone rejected a valid value")
	}
	if got := c.GetState().Axes[element.AxisX]; got != 0 {
		t.Errorf("X after deadzone = %d, want 0", got)
	}
	if got := c.UnprocessedState().Axes[element.AxisX]; got != 5000 {
		t.Errorf("raw X = %d, want 5000", got)
	}
	if n := c.EventCount(); n != 0 {
		t.Errorf("property change generated %d events", n)
	}
}

func TestPropertySettersRejectInvalidValues(t *testing.T) {
	c, _ := newTestController(t)

	if c.SetAxisDeadzone(element.AxisX, PropertyPercentMaximum+1) {
		t.Error("out-of-range deadzone accepted")
	}
	if got := c.AxisDeadzone(element.AxisX); got != DefaultDeadzone {
		t.Errorf("deadzone changed to %d on rejected set", got)
	}

	if c.SetAxisSaturation(element.AxisCount, 5000) {
		t.Error("out-of-range axis accepted")
	}
	if c.SetAxisRange(element.AxisX, 100, 100) {
		t.Error("empty range accepted")
	}
	if c.SetAxisRange(element.AxisX, 100, -100) {
		t.Error("inverted range accepted")
	}
	if min, max := c.AxisRange(element.AxisX); min != element.AnalogMinimum || max != element.AnalogMaximum {
		t.Errorf("range changed to [%d, %d] on rejected set", min, max)
	}

	if c.SetForceFeedbackGain(ffb.GainMaximum + 1) {
		t.Error("out-of-range gain accepted")
	}
	if got := c.ForceFeedbackGain(); got != ffb.GainMaximum {
		t.Errorf("gain changed to %d on rejected set", got)
	}
}

func TestSetAllAxesProperties(t *testing.T) {
	c, _ := newTestController(t)

	if !c.SetAllAxesDeadzone(1500) || !c.SetAllAxesSaturation(8500) || !c.SetAllAxesRange(-1000, 1000) {
		t.Fatal("bulk setters rejected valid values")
	}
	for a := element.AxisX; a < element.AxisCount; a++ {
		if c.AxisDeadzone(a) != 1500 || c.AxisSaturation(a) != 8500 {
			t.Errorf("axis %v percentages not applied", a)
		}
		if min, max := c.AxisRange(a); min != -1000 || max != 1000 {
			t.Errorf("axis %v range = [%d, %d]", a, min, max)
		}
	}
}

func TestTransformDisablePassesRawThrough(t *testing.T) {
	c, _ := newTestController(t)

	var raw physical.State
	raw.Sticks[physical.StickLeftX] = 5000
	c.RefreshState(raw)

	c.SetAxisDeadzone(element.AxisX, 5000)
	if got := c.GetState().Axes[element.AxisX]; got != 0 {
		t.Fatalf("deadzone not in effect: X = %d", got)
	}

	c.SetAxisTransformEnabled(element.AxisX, false)
	if got := c.GetState().Axes[element.AxisX]; got != 5000 {
		t.Errorf("disabled transform: X = %d, want raw 5000", got)
	}
}

func TestEventFilterSuppressesElements(t *testing.T) {
	c, _ := newTestController(t)

	if !c.EventFilterRemove(element.ButtonIdentifier(0)) {
		t.Fatal("filter remove failed")
	}

	var raw physical.State
	raw.Buttons.SetPressed(physical.ButtonA, true)
	raw.Buttons.SetPressed(physical.ButtonB, true)
	c.RefreshState(raw)

	events := c.PopEvents(c.EventCount())
	for _, ev := range events {
		if ev.Element == element.ButtonIdentifier(0) {
			t.Errorf("filtered element produced an event: %+v", ev)
		}
	}
	if len(events) != 1 {
		t.Errorf("got %d events, want only the B2 press", len(events))
	}
	// The state itself is unaffected by the filter.
	if !c.GetState().Buttons.Pressed(0) {
		t.Error("B1 state should be pressed regardless of the filter")
	}
}

func TestForceFeedbackExclusivity(t *testing.T) {
	src := &pollSource{waiting: make(chan struct{})}
	reg := &physical.ForceFeedbackRegistry{}
	first := New(0, mapper.StandardGamepad(), src, reg)
	defer first.Close()
	second := New(0, mapper.StandardGamepad(), src, reg)
	defer second.Close()

	if !first.RegisterForForceFeedback() {
		t.Fatal("first registration failed")
	}
	if !first.RegisterForForceFeedback() {
		t.Error("repeat registration should succeed")
	}
	if second.RegisterForForceFeedback() {
		t.Error("second controller acquired an owned slot")
	}
	if second.ForceFeedbackIsRegistered() {
		t.Error("failed registration left the controller registered")
	}

	first.UnregisterForForceFeedback()
	if !second.RegisterForForceFeedback() {
		t.Error("registration after release failed")
	}
}

func TestForceFeedbackGainReachesDevice(t *testing.T) {
	c, _ := newTestController(t)

	c.SetForceFeedbackGain(5000)
	if !c.RegisterForForceFeedback() {
		t.Fatal("registration failed")
	}
	dev := c.ForceFeedbackDevice()
	if dev == nil {
		t.Fatal("no device after registration")
	}
	if got := dev.Gain(); got != 5000 {
		t.Errorf("device gain = %d, want 5000", got)
	}

	c.SetForceFeedbackGain(10000)
	if got := dev.Gain(); got != 10000 {
		t.Errorf("device gain after update = %d, want 10000", got)
	}
}

func TestCloseIsIdempotentAndReleasesForceFeedback(t *testing.T) {
	src := &pollSource{waiting: make(chan struct{})}
	reg := &physical.ForceFeedbackRegistry{}
	c := New(0, mapper.StandardGamepad(), src, reg)

	c.RegisterForForceFeedback()
	c.Close()
	c.Close()

	if reg.Registered(0) != nil {
		t.Error("close should release the force-feedback registration")
	}
}

func TestGuardSnapshot(t *testing.T) {
	c, _ := newTestController(t)

	var raw physical.State
	raw.Sticks[physical.StickLeftY] = -7000
	c.RefreshState(raw)

	g := c.Acquire()
	s := g.State()
	u := g.UnprocessedState()
	dz := g.AxisDeadzone(element.AxisY)
	n := g.EventCount()
	g.Release()
	g.Release() // second release is a no-op

	if s.Axes[element.AxisY] != -7000 || u.Axes[element.AxisY] != -7000 {
		t.Errorf("guarded state Y = %d / %d, want -7000", s.Axes[element.AxisY], u.Axes[element.AxisY])
	}
	if dz != DefaultDeadzone {
		t.Errorf("guarded deadzone = %d", dz)
	}
	if n != 1 {
		t.Errorf("guarded event count = %d, want 1", n)
	}

	// The controller's own locking methods still work after release.
	if got := c.GetState().Axes[element.AxisY]; got != -7000 {
		t.Errorf("GetState after guard = %d", got)
	}
}

func TestDistinctInstances(t *testing.T) {
	a, _ := newTestController(t)
	b, _ := newTestController(t)
	if a.Instance() == b.Instance() {
		t.Error("two controllers share an instance identity")
	}
}
