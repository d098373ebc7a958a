package physical

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/soar/padbridge/internal/ffb"
)

func TestForceFeedbackRegistry(t *testing.T) {
	var reg ForceFeedbackRegistry
	a := ffb.NewDevice(ffb.DefaultActuatorMap())
	b := ffb.NewDevice(ffb.DefaultActuatorMap())

	if !reg.Register(0, a) {
		t.Fatal("first registration failed")
	}
	if !reg.Register(0, a) {
		t.Error("repeat registration of the same device should succeed")
	}
	if reg.Register(0, b) {
		t.Error("second device claimed an owned slot")
	}
	if reg.Registered(0) != a {
		t.Error("wrong owner recorded")
	}

	// Slots are independent.
	if !reg.Register(1, b) {
		t.Error("registration on a free slot failed")
	}

	// Unregistering with the wrong device is a no-op.
	reg.Unregister(0, b)
	if reg.Registered(0) != a {
		t.Error("unregister by a non-owner released the slot")
	}

	reg.Unregister(0, a)
	if reg.Registered(0) != nil {
		t.Error("slot not released")
	}
	reg.Unregister(0, a) // idempotent

	if !reg.Register(0, b) {
		t.Error("registration after release failed")
	}
}

func TestForceFeedbackRegistryBounds(t *testing.T) {
	var reg ForceFeedbackRegistry
	dev := ffb.NewDevice(ffb.DefaultActuatorMap())
	if reg.Register(-1, dev) || reg.Register(MaxControllers, dev) {
		t.Error("out-of-range controller accepted")
	}
	if reg.Register(0, nil) {
		t.Error("nil device accepted")
	}
	if reg.Registered(-1) != nil || reg.Registered(MaxControllers) != nil {
		t.Error("out-of-range lookup returned a device")
	}
}

func TestButtonMask(t *testing.T) {
	var m ButtonMask
	m.SetPressed(ButtonA, true)
	m.SetPressed(ButtonDpadRight, true)
	if !m.Pressed(ButtonA) || !m.Pressed(ButtonDpadRight) {
		t.Errorf("expected A and DpadRight pressed, mask = %014b", m)
	}
	m.SetPressed(ButtonA, false)
	if m.Pressed(ButtonA) {
		t.Error("A should be released")
	}
	if m.Pressed(ButtonPhysicalCount) || m.Pressed(-1) {
		t.Error("out-of-range buttons must read as released")
	}
}

func TestCircleToSquare(t *testing.T) {
	// Zero percent passes readings through unchanged.
	if x, y := CircleToSquare(12345, -6789, 0); x != 12345 || y != -6789 {
		t.Errorf("0%% changed the reading: %d, %d", x, y)
	}

	// Pure-axis deflection lies on the square already.
	if x, y := CircleToSquare(20000, 0, 100); x != 20000 || y != 0 {
		t.Errorf("pure axis changed: %d, %d", x, y)
	}

	// A circular-limit diagonal stretches to the square corner at 100%.
	x, y := CircleToSquare(23170, 23170, 100)
	if x != y {
		t.Errorf("diagonal lost symmetry: %d, %d", x, y)
	}
	if x < 32000 {
		t.Errorf("diagonal at 100%% = %d, want near the corner", x)
	}

	// Partial percentages land between the circle and the square.
	px, _ := CircleToSquare(23170, 23170, 50)
	if px <= 23170 || px >= x {
		t.Errorf("diagonal at 50%% = %d, want between 23170 and %d", px, x)
	}

	// Negative quadrants stretch symmetrically.
	nx, ny := CircleToSquare(-23170, -23170, 100)
	if nx != -x && nx != -x-1 {
		t.Errorf("negative diagonal = %d, want about %d", nx, -x)
	}
	if nx != ny {
		t.Errorf("negative diagonal lost symmetry: %d, %d", nx, ny)
	}

	// Center stays put.
	if x, y := CircleToSquare(0, 0, 100); x != 0 || y != 0 {
		t.Errorf("center moved: %d, %d", x, y)
	}
}

func TestWaitByPollingDetectsChange(t *testing.T) {
	var calls atomic.Int32
	poll := func() State {
		var s State
		if calls.Add(1) >= 3 {
			s.Buttons.SetPressed(ButtonA, true)
		}
		return s
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if !WaitByPolling(ctx, poll, State{}) {
		t.Fatal("change not detected")
	}
	if calls.Load() < 3 {
		t.Errorf("returned after %d polls, want at least 3", calls.Load())
	}
}

func TestWaitByPollingHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	if WaitByPolling(ctx, func() State { return State{} }, State{}) {
		t.Error("unchanged state reported as a change")
	}
}
