package mapper

import "github.com/soar/padbridge/internal/element"

// ButtonMapper maps its input onto one virtual button. Analog and trigger
// sources are thresholded. Contributions only ever press the button, so
// several mappers can share a target without clearing each other within one
// aggregation pass.
type ButtonMapper struct {
	button element.Button
}

func NewButtonMapper(button element.Button) *ButtonMapper {
	return &ButtonMapper{button: button}
}

func (m *ButtonMapper) Button() element.Button { return m.button }

func (m *ButtonMapper) ContributeFromAnalog(s *element.State, value int16, _ SourceID) {
	if analogIsPressed(value) {
		s.Buttons.SetPressed(m.button, true)
	}
}

func (m *ButtonMapper) ContributeFromButton(s *element.State, pressed bool, _ SourceID) {
	if pressed {
		s.Buttons.SetPressed(m.button, true)
	}
}

func (m *ButtonMapper) ContributeFromTrigger(s *element.State, value uint8, _ SourceID) {
	if triggerIsPressed(value) {
		s.Buttons.SetPressed(m.button, true)
	}
}

func (m *ButtonMapper) ContributeNeutral(*element.State, SourceID) {}

func (m *ButtonMapper) TargetElementCount() int { return 1 }

func (m *ButtonMapper) TargetElementAt(index int) (element.Identifier, bool) {
	if index != 0 {
		return element.Identifier{}, false
	}
	return element.ButtonIdentifier(m.button), true
}

func (m *ButtonMapper) Clone() Mapper {
	c := *m
	return &c
}

// PovMapper maps its input onto one POV hat direction flag, thresholded the
// same way as ButtonMapper.
type PovMapper struct {
	direction element.POVDirection
}

func NewPovMapper(direction element.POVDirection) *PovMapper {
	return &PovMapper{direction: direction}
}

func (m *PovMapper) POVDirection() element.POVDirection { return m.direction }

func (m *PovMapper) ContributeFromAnalog(s *element.State, value int16, _ SourceID) {
	if analogIsPressed(value) {
		s.POV.SetPressed(m.direction, true)
	}
}

func (m *PovMapper) ContributeFromButton(s *element.State, pressed bool, _ SourceID) {
	if pressed {
		s.POV.SetPressed(m.direction, true)
	}
}

func (m *PovMapper) ContributeFromTrigger(s *element.State, value uint8, _ SourceID) {
	if triggerIsPressed(value) {
		s.POV.SetPressed(m.direction, true)
	}
}

func (m *PovMapper) ContributeNeutral(*element.State, SourceID) {}

func (m *PovMapper) TargetElementCount() int { return 1 }

func (m *PovMapper) TargetElementAt(index int) (element.Identifier, bool) {
	if index != 0 {
		return element.Identifier{}, false
	}
	return element.POVIdentifier(), true
}

func (m *PovMapper) Clone() Mapper {
	c := *m
	return &c
}
