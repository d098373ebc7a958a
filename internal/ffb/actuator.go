// Package ffb defines the force-feedback value types: actuator descriptors,
// the per-axis magnitude vector produced by an effect engine, and the
// translation from virtual force axes to physical actuator power levels.
package ffb

import (
	"math"

	"github.com/soar/padbridge/internal/element"
)

// Magnitude components and actuator power levels share the same bounded
// range.
const (
	MagnitudeMaximum int32  = 10000
	PowerMaximum     uint32 = 10000

	// GainMaximum is the device gain value that applies no attenuation.
	GainMaximum uint32 = 10000
)

// MagnitudeVector carries one signed force component per possible virtual
// axis. Components for axes absent from the controller are zero.
type MagnitudeVector [element.AxisCount]int32

// ActuatorMode selects how an actuator derives its power from the magnitude
// vector.
type ActuatorMode int

const (
	// ActuatorDisabled ignores the vector entirely.
	ActuatorDisabled ActuatorMode = iota
	// ActuatorSingleAxis takes the component along one axis, optionally
	// restricted to one direction.
	ActuatorSingleAxis
	// ActuatorMagnitudeProjection combines the components along two axes.
	ActuatorMagnitudeProjection
)

// ActuatorDirection restricts a single-axis actuator to force components of
// one sign.
type ActuatorDirection int

const (
	DirectionBoth ActuatorDirection = iota
	DirectionPositive
	DirectionNegative
)

// Actuator describes how one physical force-feedback output derives its
// power.
type Actuator struct {
	Mode      ActuatorMode
	Axis      element.Axis
	Direction ActuatorDirection // single-axis mode only
	Axis2     element.Axis      // magnitude-projection mode only
}

// DefaultActuator is the descriptor used where a configuration names
// "Default": full-strength projection of the planar X/Y force.
func DefaultActuator() Actuator {
	return Actuator{Mode: ActuatorMagnitudeProjection, Axis: element.AxisX, Axis2: element.AxisY}
}

// IsActive reports whether the actuator contributes any output.
func (a Actuator) IsActive() bool {
	return a.Mode != ActuatorDisabled
}

// UsesAxis reports whether the actuator derives power from the given virtual
// axis.
func (a Actuator) UsesAxis(axis element.Axis) bool {
	switch a.Mode {
	case ActuatorSingleAxis:
		return a.Axis == axis
	case ActuatorMagnitudeProjection:
		return a.Axis == axis || a.Axis2 == axis
	}
	return false
}

// Power derives the actuator's output level from a magnitude vector. The
// result is bounded by PowerMaximum regardless of how many axes feed the
// actuator.
func (a Actuator) Power(v MagnitudeVector) uint32 {
	switch a.Mode {
	case ActuatorSingleAxis:
		c := v[a.Axis]
		switch a.Direction {
		case DirectionPositive:
			if c < 0 {
				return 0
			}
		case DirectionNegative:
			if c > 0 {
				return 0
			}
		}
		if c < 0 {
			c = -c
		}
		return clampPower(uint64(c))
	case ActuatorMagnitudeProjection:
		m := math.Hypot(float64(v[a.Axis]), float64(v[a.Axis2]))
		return clampPower(uint64(m))
	}
	return 0
}

func clampPower(p uint64) uint32 {
	if p > uint64(PowerMaximum) {
		return PowerMaximum
	}
	return uint32(p)
}

// ActuatorKind identifies one physical actuator slot.
type ActuatorKind int

const (
	ActuatorLeftMotor ActuatorKind = iota
	ActuatorRightMotor
	ActuatorLeftImpulseTrigger
	ActuatorRightImpulseTrigger

	ActuatorKindCount
)

var actuatorKindNames = [ActuatorKindCount]string{
	"LeftMotor", "RightMotor", "LeftImpulseTrigger", "RightImpulseTrigger",
}

func (k ActuatorKind) String() string {
	if k < 0 || k >= ActuatorKindCount {
		return "unknown"
	}
	return actuatorKindNames[k]
}

// ActuatorMap assigns a descriptor to each physical actuator slot of a
// controller.
type ActuatorMap struct {
	LeftMotor           Actuator
	RightMotor          Actuator
	LeftImpulseTrigger  Actuator
	RightImpulseTrigger Actuator
}

// DefaultActuatorMap drives both rumble motors from the planar force and
// leaves the impulse triggers off.
func DefaultActuatorMap() ActuatorMap {
	return ActuatorMap{
		LeftMotor:  DefaultActuator(),
		RightMotor: DefaultActuator(),
	}
}

// Get returns the descriptor for one slot.
func (m ActuatorMap) Get(k ActuatorKind) Actuator {
	switch k {
	case ActuatorLeftMotor:
		return m.LeftMotor
	case ActuatorRightMotor:
		return m.RightMotor
	case ActuatorLeftImpulseTrigger:
		return m.LeftImpulseTrigger
	case ActuatorRightImpulseTrigger:
		return m.RightImpulseTrigger
	}
	return Actuator{}
}

// AxisHasActuator reports whether any active actuator derives power from the
// given virtual axis; such axes advertise force-feedback support in the
// controller capabilities.
func (m ActuatorMap) AxisHasActuator(axis element.Axis) bool {
	for k := ActuatorKind(0); k < ActuatorKindCount; k++ {
		a := m.Get(k)
		if a.IsActive() && a.UsesAxis(axis) {
			return true
		}
	}
	return false
}

// ActuatorPowers is the fixed-size translation output: one power level per
// physical actuator slot.
type ActuatorPowers [ActuatorKindCount]uint32

// Powers converts a magnitude vector into per-actuator power levels, scaled
// uniformly by the device gain (0..GainMaximum).
func (m ActuatorMap) Powers(v MagnitudeVector, gain uint32) ActuatorPowers {
	if gain > GainMaximum {
		gain = GainMaximum
	}
	var out ActuatorPowers
	for k := ActuatorKind(0); k < ActuatorKindCount; k++ {
		p := uint64(m.Get(k).Power(v)) * uint64(gain) / uint64(GainMaximum)
		out[k] = uint32(p)
	}
	return out
}
