package mapper

import (
	"github.com/soar/padbridge/internal/element"
	"github.com/soar/padbridge/internal/osinput"
)

// KeyboardMapper contributes nothing to controller state; its effect is a
// submitted keyboard state report. Deduplication of repeat reports is the
// sink's job.
type KeyboardMapper struct {
	key osinput.Key
}

func NewKeyboardMapper(key osinput.Key) *KeyboardMapper {
	return &KeyboardMapper{key: key}
}

func (m *KeyboardMapper) Key() osinput.Key { return m.key }

func (m *KeyboardMapper) ContributeFromAnalog(_ *element.State, value int16, _ SourceID) {
	osinput.SubmitKeyState(m.key, analogIsPressed(value))
}

func (m *KeyboardMapper) ContributeFromButton(_ *element.State, pressed bool, _ SourceID) {
	osinput.SubmitKeyState(m.key, pressed)
}

func (m *KeyboardMapper) ContributeFromTrigger(_ *element.State, value uint8, _ SourceID) {
	osinput.SubmitKeyState(m.key, triggerIsPressed(value))
}

func (m *KeyboardMapper) ContributeNeutral(*element.State, SourceID) {
	osinput.SubmitKeyState(m.key, false)
}

func (m *KeyboardMapper) TargetElementCount() int { return 0 }

func (m *KeyboardMapper) TargetElementAt(int) (element.Identifier, bool) {
	return element.Identifier{}, false
}

func (m *KeyboardMapper) Clone() Mapper {
	c := *m
	return &c
}

// MouseButtonMapper submits a mouse button state report, thresholded like
// ButtonMapper.
type MouseButtonMapper struct {
	button osinput.MouseButton
}

func NewMouseButtonMapper(button osinput.MouseButton) *MouseButtonMapper {
	return &MouseButtonMapper{button: button}
}

func (m *MouseButtonMapper) MouseButton() osinput.MouseButton { return m.button }

func (m *MouseButtonMapper) ContributeFromAnalog(_ *element.State, value int16, _ SourceID) {
	osinput.SubmitMouseButtonState(m.button, analogIsPressed(value))
}

func (m *MouseButtonMapper) ContributeFromButton(_ *element.State, pressed bool, _ SourceID) {
	osinput.SubmitMouseButtonState(m.button, pressed)
}

func (m *MouseButtonMapper) ContributeFromTrigger(_ *element.State, value uint8, _ SourceID) {
	osinput.SubmitMouseButtonState(m.button, triggerIsPressed(value))
}

func (m *MouseButtonMapper) ContributeNeutral(*element.State, SourceID) {
	osinput.SubmitMouseButtonState(m.button, false)
}

func (m *MouseButtonMapper) TargetElementCount() int { return 0 }

func (m *MouseButtonMapper) TargetElementAt(int) (element.Identifier, bool) {
	return element.Identifier{}, false
}

func (m *MouseButtonMapper) Clone() Mapper {
	c := *m
	return &c
}

// mouseMotionDivisor converts an analog-range contribution into a per-poll
// pointer motion amount.
const mouseMotionDivisor = 2048

// mouseButtonStep is the per-poll motion produced by a digital input driving
// a mouse axis.
const mouseButtonStep = 8

// MouseAxisMapper submits scaled pointer or wheel motion, with half-axis
// support matching AxisMapper's direction semantics.
type MouseAxisMapper struct {
	axis      osinput.MouseAxis
	direction AxisDirection
}

func NewMouseAxisMapper(axis osinput.MouseAxis, direction AxisDirection) *MouseAxisMapper {
	return &MouseAxisMapper{axis: axis, direction: direction}
}

func (m *MouseAxisMapper) MouseAxis() osinput.MouseAxis { return m.axis }
func (m *MouseAxisMapper) Direction() AxisDirection     { return m.direction }

func (m *MouseAxisMapper) ContributeFromAnalog(_ *element.State, value int16, _ SourceID) {
	var c int32
	switch m.direction {
	case DirectionPositive:
		c = analogToPositive(value)
	case DirectionNegative:
		c = analogToNegative(value)
	default:
		c = analogToBoth(value)
	}
	osinput.SubmitMouseMovement(m.axis, c/mouseMotionDivisor)
}

func (m *MouseAxisMapper) ContributeFromButton(_ *element.State, pressed bool, _ SourceID) {
	if !pressed {
		return
	}
	step := int32(mouseButtonStep)
	if m.direction == DirectionNegative {
		step = -step
	}
	osinput.SubmitMouseMovement(m.axis, step)
}

func (m *MouseAxisMapper) ContributeFromTrigger(_ *element.State, value uint8, _ SourceID) {
	var c int32
	switch m.direction {
	case DirectionNegative:
		c = triggerToNegative(value)
	default:
		c = triggerToPositive(value)
	}
	osinput.SubmitMouseMovement(m.axis, c/mouseMotionDivisor)
}

func (m *MouseAxisMapper) ContributeNeutral(*element.State, SourceID) {}

func (m *MouseAxisMapper) TargetElementCount() int { return 0 }

func (m *MouseAxisMapper) TargetElementAt(int) (element.Identifier, bool) {
	return element.Identifier{}, false
}

func (m *MouseAxisMapper) Clone() Mapper {
	c := *m
	return &c
}

// MouseSpeedModifierMapper contributes no state at all; while its input is
// pressed it overrides the global mouse speed scale.
type MouseSpeedModifierMapper struct {
	percent uint32
}

func NewMouseSpeedModifierMapper(percent uint32) *MouseSpeedModifierMapper {
	return &MouseSpeedModifierMapper{percent: percent}
}

func (m *MouseSpeedModifierMapper) SpeedPercent() uint32 { return m.percent }

func (m *MouseSpeedModifierMapper) apply(pressed bool) {
	if pressed {
		osinput.PushSpeedOverride(m, m.percent)
	} else {
		osinput.PopSpeedOverride(m)
	}
}

func (m *MouseSpeedModifierMapper) ContributeFromAnalog(_ *element.State, value int16, _ SourceID) {
	m.apply(analogIsPressed(value))
}

func (m *MouseSpeedModifierMapper) ContributeFromButton(_ *element.State, pressed bool, _ SourceID) {
	m.apply(pressed)
}

func (m *MouseSpeedModifierMapper) ContributeFromTrigger(_ *element.State, value uint8, _ SourceID) {
	m.apply(triggerIsPressed(value))
}

func (m *MouseSpeedModifierMapper) ContributeNeutral(*element.State, SourceID) {
	m.apply(false)
}

func (m *MouseSpeedModifierMapper) TargetElementCount() int { return 0 }

func (m *MouseSpeedModifierMapper) TargetElementAt(int) (element.Identifier, bool) {
	return element.Identifier{}, false
}

func (m *MouseSpeedModifierMapper) Clone() Mapper {
	c := *m
	return &c
}
