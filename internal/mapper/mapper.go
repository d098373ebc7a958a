// Package mapper implements the element-mapper hierarchy that translates
// physical controller readings into virtual controller state, the textual
// mini-language that builds mapper trees from configuration strings, and the
// device map that binds one mapper to each physical element.
package mapper

import (
	"github.com/soar/padbridge/internal/element"
	"github.com/soar/padbridge/internal/physical"
)

// SourceID tags a contribution with the physical input driving it, so that
// stateful mappers can track their own source. Opaque to mappers beyond
// comparability.
type SourceID struct {
	Controller physical.ControllerID
	Element    int
}

// Mapper converts one physical reading into a contribution on zero or more
// virtual elements. Implementations are immutable value-like objects once
// built; Clone produces a deep copy. Target-element metadata is pure and
// independent of any dynamic state.
type Mapper interface {
	// ContributeFromAnalog applies a stick axis reading (-32768..32767,
	// neutral 0).
	ContributeFromAnalog(s *element.State, value int16, source SourceID)

	// ContributeFromButton applies a digital button reading.
	ContributeFromButton(s *element.State, pressed bool, source SourceID)

	// ContributeFromTrigger applies a trigger reading (0..255).
	ContributeFromTrigger(s *element.State, value uint8, source SourceID)

	// ContributeNeutral tells side-effecting mappers their input is at
	// rest. State-only mappers treat it as a no-op.
	ContributeNeutral(s *element.State, source SourceID)

	// TargetElementCount reports how many virtual elements the mapper
	// writes to.
	TargetElementCount() int

	// TargetElementAt returns the identifier of the index-th target
	// element.
	TargetElementAt(index int) (element.Identifier, bool)

	Clone() Mapper
}

// AxisDirection selects whole-axis or half-axis behavior for axis-type
// mappers.
type AxisDirection int

const (
	DirectionBoth AxisDirection = iota
	DirectionPositive
	DirectionNegative
)

func (d AxisDirection) String() string {
	switch d {
	case DirectionBoth:
		return "Both"
	case DirectionPositive:
		return "Positive"
	case DirectionNegative:
		return "Negative"
	}
	return "unknown"
}

// Pressed-state thresholds for mappers that reduce analog or trigger
// readings to a binary state.
const (
	analogPressedThreshold  int32 = (element.AnalogMaximum + 1) / 2
	triggerPressedThreshold int32 = (element.TriggerMaximum + 1) / 2

	// digitalThreshold is where DigitalAxis quantization snaps away from
	// neutral.
	digitalThreshold int32 = element.AnalogMaximum / 3
)

func analogIsPressed(v int16) bool {
	return int32(v) >= analogPressedThreshold || int32(v) <= -analogPressedThreshold
}

func triggerIsPressed(v uint8) bool {
	return int32(v) >= triggerPressedThreshold
}

// Conversions from physical readings onto whole or half axes. Half-axis
// conversions map the entire input range onto one side of neutral, so the
// resting input position lands exactly on neutral.
func analogToBoth(v int16) int32 {
	return int32(v)
}

func analogToPositive(v int16) int32 {
	return (int32(v) - element.AnalogMinimum) / 2
}

func analogToNegative(v int16) int32 {
	return (int32(v) - element.AnalogMaximum) / 2
}

func triggerToBoth(v uint8) int32 {
	return int32(v)*257 + element.AnalogMinimum
}

func triggerToPositive(v uint8) int32 {
	return int32(v) * element.AnalogMaximum / element.TriggerMaximum
}

func triggerToNegative(v uint8) int32 {
	return -triggerToPositive(v)
}
