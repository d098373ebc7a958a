package mapper

import "github.com/soar/padbridge/internal/element"

// AxisMapper maps its input onto one virtual axis, either across the whole
// range or onto one half of it.
type AxisMapper struct {
	axis      element.Axis
	direction AxisDirection
}

func NewAxisMapper(axis element.Axis, direction AxisDirection) *AxisMapper {
	return &AxisMapper{axis: axis, direction: direction}
}

func (m *AxisMapper) Axis() element.Axis       { return m.axis }
func (m *AxisMapper) Direction() AxisDirection { return m.direction }

func (m *AxisMapper) ContributeFromAnalog(s *element.State, value int16, _ SourceID) {
	var c int32
	switch m.direction {
	case DirectionPositive:
		c = analogToPositive(value)
	case DirectionNegative:
		c = analogToNegative(value)
	default:
		c = analogToBoth(value)
	}
	s.ContributeAxis(m.axis, c)
}

func (m *AxisMapper) ContributeFromButton(s *element.State, pressed bool, _ SourceID) {
	s.ContributeAxis(m.axis, m.buttonContribution(pressed))
}

func (m *AxisMapper) buttonContribution(pressed bool) int32 {
	switch m.direction {
	case DirectionPositive:
		if pressed {
			return element.AnalogMaximum
		}
		return element.AnalogNeutral
	case DirectionNegative:
		if pressed {
			return element.AnalogMinimum
		}
		return element.AnalogNeutral
	default:
		if pressed {
			return element.AnalogMaximum
		}
		return element.AnalogMinimum
	}
}

func (m *AxisMapper) ContributeFromTrigger(s *element.State, value uint8, _ SourceID) {
	var c int32
	switch m.direction {
	case DirectionPositive:
		c = triggerToPositive(value)
	case DirectionNegative:
		c = triggerToNegative(value)
	default:
		c = triggerToBoth(value)
	}
	s.ContributeAxis(m.axis, c)
}

func (m *AxisMapper) ContributeNeutral(*element.State, SourceID) {}

func (m *AxisMapper) TargetElementCount() int { return 1 }

func (m *AxisMapper) TargetElementAt(index int) (element.Identifier, bool) {
	if index != 0 {
		return element.Identifier{}, false
	}
	return element.AxisIdentifier(m.axis), true
}

func (m *AxisMapper) Clone() Mapper {
	c := *m
	return &c
}

// DigitalAxisMapper maps its input onto one virtual axis quantized to the
// negative extreme, neutral, or the positive extreme.
type DigitalAxisMapper struct {
	axis      element.Axis
	direction AxisDirection
}

func NewDigitalAxisMapper(axis element.Axis, direction AxisDirection) *DigitalAxisMapper {
	return &DigitalAxisMapper{axis: axis, direction: direction}
}

func (m *DigitalAxisMapper) Axis() element.Axis       { return m.axis }
func (m *DigitalAxisMapper) Direction() AxisDirection { return m.direction }

func (m *DigitalAxisMapper) ContributeFromAnalog(s *element.State, value int16, _ SourceID) {
	v := int32(value)
	var c int32
	switch m.direction {
	case DirectionPositive:
		if v >= digitalThreshold {
			c = element.AnalogMaximum
		}
	case DirectionNegative:
		if v <= -digitalThreshold {
			c = element.AnalogMinimum
		}
	default:
		if v >= digitalThreshold {
			c = element.AnalogMaximum
		} else if v <= -digitalThreshold {
			c = element.AnalogMinimum
		}
	}
	s.ContributeAxis(m.axis, c)
}

func (m *DigitalAxisMapper) ContributeFromButton(s *element.State, pressed bool, src SourceID) {
	am := AxisMapper{axis: m.axis, direction: m.direction}
	am.ContributeFromButton(s, pressed, src)
}

func (m *DigitalAxisMapper) ContributeFromTrigger(s *element.State, value uint8, _ SourceID) {
	pressed := triggerIsPressed(value)
	var c int32
	switch m.direction {
	case DirectionPositive:
		if pressed {
			c = element.AnalogMaximum
		}
	case DirectionNegative:
		if pressed {
			c = element.AnalogMinimum
		}
	default:
		if pressed {
			c = element.AnalogMaximum
		} else {
			c = element.AnalogMinimum
		}
	}
	s.ContributeAxis(m.axis, c)
}

func (m *DigitalAxisMapper) ContributeNeutral(*element.State, SourceID) {}

func (m *DigitalAxisMapper) TargetElementCount() int { return 1 }

func (m *DigitalAxisMapper) TargetElementAt(index int) (element.Identifier, bool) {
	if index != 0 {
		return element.Identifier{}, false
	}
	return element.AxisIdentifier(m.axis), true
}

func (m *DigitalAxisMapper) Clone() Mapper {
	c := *m
	return &c
}
