package mapper

import (
	"testing"

	"github.com/soar/padbridge/internal/element"
	"github.com/soar/padbridge/internal/osinput"
	"github.com/soar/padbridge/internal/physical"
)

func TestStandardGamepadCapabilities(t *testing.T) {
	caps := StandardGamepad().Capabilities()

	wantAxes := []element.Axis{element.AxisX, element.AxisY, element.AxisZ, element.AxisRotZ}
	if len(caps.Axes) != len(wantAxes) {
		t.Fatalf("axis count = %d, want %d", len(caps.Axes), len(wantAxes))
	}
	for i, want := range wantAxes {
		if caps.Axes[i].Axis != want {
			t.Errorf("axis %d = %v, want %v", i, caps.Axes[i].Axis, want)
		}
	}

	// DefaultActuatorMap drives the motors from the X/Y plane.
	if !caps.Axes[caps.AxisIndex(element.AxisX)].SupportsForceFeedback {
		t.Error("X should support force feedback")
	}
	if caps.Axes[caps.AxisIndex(element.AxisZ)].SupportsForceFeedback {
		t.Error("Z should not support force feedback")
	}
	if got := caps.ForceFeedbackAxisCount(); got != 2 {
		t.Errorf("force feedback axis count = %d, want 2", got)
	}

	if caps.NumButtons != 12 {
		t.Errorf("button count = %d, want 12", caps.NumButtons)
	}
	if !caps.HasPOV {
		t.Error("POV should be present")
	}
}

func TestStandardGamepadMap(t *testing.T) {
	m := StandardGamepad()

	var raw physical.State
	raw.Sticks[physical.StickLeftX] = 12000
	raw.Sticks[physical.StickRightY] = -5000
	raw.Triggers[physical.TriggerRight] = 255
	raw.Buttons.SetPressed(physical.ButtonA, true)
	raw.Buttons.SetPressed(physical.ButtonStart, true)
	raw.Buttons.SetPressed(physical.ButtonDpadUp, true)
	raw.Buttons.SetPressed(physical.ButtonDpadRight, true)

	s := m.Map(0, raw)

	if s.Axes[element.AxisX] != 12000 {
		t.Errorf("X = %d, want 12000", s.Axes[element.AxisX])
	}
	if s.Axes[element.AxisRotZ] != -5000 {
		t.Errorf("RotZ = %d, want -5000", s.Axes[element.AxisRotZ])
	}
	if !s.Buttons.Pressed(0) {
		t.Error("A should press B1")
	}
	if !s.Buttons.Pressed(7) {
		t.Error("full right trigger should press B8")
	}
	if s.Buttons.Pressed(6) {
		t.Error("resting left trigger should not press B7")
	}
	if !s.Buttons.Pressed(9) {
		t.Error("Start should press B10")
	}
	if got := s.POV.Angle(); got != 4500 {
		t.Errorf("POV angle = %d, want 4500", got)
	}
}

func TestMapOfNeutralInputIsZero(t *testing.T) {
	s := StandardGamepad().Map(0, physical.State{})
	if s != (element.State{}) {
		t.Errorf("neutral physical input produced non-zero state: %+v", s)
	}
}

func TestWithElement(t *testing.T) {
	m := StandardGamepad()

	replaced, ok := m.WithElement("StickRightX", nil)
	if !ok {
		t.Fatal("known slot rejected")
	}
	if replaced.Capabilities().HasAxis(element.AxisZ) {
		t.Error("Z should disappear when its only mapper is cleared")
	}
	// The original is untouched.
	if !m.Capabilities().HasAxis(element.AxisZ) {
		t.Error("original map was mutated")
	}

	if _, ok := m.WithElement("flightstick", NewNullMapper()); ok {
		t.Error("unknown slot accepted")
	}
}

func TestNeutralReleasesSideEffects(t *testing.T) {
	queue := osinput.NewQueue()
	prev := osinput.SetSink(queue)
	defer osinput.SetSink(prev)

	m, ok := StandardGamepad().WithElement("ButtonA", mustMapper("Keyboard(Space)"))
	if !ok {
		t.Fatal("WithElement failed")
	}

	var raw physical.State
	raw.Buttons.SetPressed(physical.ButtonA, true)
	m.Map(0, raw)
	if !queue.KeyIsPressed(osinput.KeySpace) {
		t.Fatal("space should be pressed")
	}

	m.Neutral(0)
	if queue.KeyIsPressed(osinput.KeySpace) {
		t.Error("space should be released after neutral pass")
	}
}

func TestNamed(t *testing.T) {
	for _, name := range []string{"StandardGamepad", "digitalgamepad", " DigitalGamepad "} {
		if _, ok := Named(name); !ok {
			t.Errorf("Named(%q) not found", name)
		}
	}
	if _, ok := Named("WheelAndPedals"); ok {
		t.Error("unknown name resolved")
	}
}

func TestDigitalGamepadQuantizesSticks(t *testing.T) {
	m, _ := Named("DigitalGamepad")

	var raw physical.State
	raw.Sticks[physical.StickLeftX] = 20000
	s := m.Map(0, raw)
	if s.Axes[element.AxisX] != element.AnalogMaximum {
		t.Errorf("X = %d, want %d", s.Axes[element.AxisX], element.AnalogMaximum)
	}

	raw.Sticks[physical.StickLeftX] = 5000
	s = m.Map(0, raw)
	if s.Axes[element.AxisX] != element.AnalogNeutral {
		t.Errorf("X = %d, want neutral", s.Axes[element.AxisX])
	}
}

func TestElementsReturnsDeepCopy(t *testing.T) {
	m := StandardGamepad()
	elems := m.Elements()
	elems.ButtonA = nil
	if m.Elements().ButtonA == nil {
		t.Error("mutating the returned assignment changed the map")
	}
}

func TestIsValidElementName(t *testing.T) {
	for _, name := range []string{"StickLeftX", "triggerrt", " DpadDown "} {
		if !IsValidElementName(name) {
			t.Errorf("IsValidElementName(%q) = false", name)
		}
	}
	if IsValidElementName("paddle1") {
		t.Error("unknown element name accepted")
	}
}
