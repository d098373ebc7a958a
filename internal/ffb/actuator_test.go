package ffb

import (
	"testing"

	"github.com/soar/padbridge/internal/element"
)

func TestSingleAxisPower(t *testing.T) {
	tests := []struct {
		name      string
		direction ActuatorDirection
		component int32
		want      uint32
	}{
		{"both positive", DirectionBoth, 3000, 3000},
		{"both negative", DirectionBoth, -3000, 3000},
		{"positive keeps positive", DirectionPositive, 3000, 3000},
		{"positive drops negative", DirectionPositive, -3000, 0},
		{"negative keeps negative", DirectionNegative, -3000, 3000},
		{"negative drops positive", DirectionNegative, 3000, 0},
		{"zero", DirectionBoth, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Actuator{Mode: ActuatorSingleAxis, Axis: element.AxisX, Direction: tt.direction}
			var v MagnitudeVector
			v[element.AxisX] = tt.component
			if got := a.Power(v); got != tt.want {
				t.Errorf("Power = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMagnitudeProjectionPower(t *testing.T) {
	a := Actuator{Mode: ActuatorMagnitudeProjection, Axis: element.AxisX, Axis2: element.AxisY}

	var v MagnitudeVector
	v[element.AxisX] = 3000
	v[element.AxisY] = 4000
	if got := a.Power(v); got != 5000 {
		t.Errorf("3-4-5 projection = %d, want 5000", got)
	}

	// Diagonal full force clamps to the power range instead of exceeding it.
	v[element.AxisX] = MagnitudeMaximum
	v[element.AxisY] = MagnitudeMaximum
	if got := a.Power(v); got != PowerMaximum {
		t.Errorf("clamped projection = %d, want %d", got, PowerMaximum)
	}

	// Sign does not matter.
	v[element.AxisX] = -3000
	v[element.AxisY] = 4000
	if got := a.Power(v); got != 5000 {
		t.Errorf("signed projection = %d, want 5000", got)
	}
}

func TestDisabledActuator(t *testing.T) {
	var a Actuator
	var v MagnitudeVector
	v[element.AxisX] = MagnitudeMaximum
	if got := a.Power(v); got != 0 {
		t.Errorf("disabled actuator power = %d, want 0", got)
	}
	if a.IsActive() {
		t.Error("zero-value actuator should be inactive")
	}
	if a.UsesAxis(element.AxisX) {
		t.Error("disabled actuator should use no axis")
	}
}

func TestActuatorMapPowersWithGain(t *testing.T) {
	m := DefaultActuatorMap()
	var v MagnitudeVector
	v[element.AxisX] = 6000
	v[element.AxisY] = 8000

	full := m.Powers(v, GainMaximum)
	if full[ActuatorLeftMotor] != 10000 || full[ActuatorRightMotor] != 10000 {
		t.Errorf("full-gain powers = %+v", full)
	}
	if full[ActuatorLeftImpulseTrigger] != 0 || full[ActuatorRightImpulseTrigger] != 0 {
		t.Errorf("impulse triggers should be off by default: %+v", full)
	}

	half := m.Powers(v, 5000)
	if half[ActuatorLeftMotor] != 5000 {
		t.Errorf("half-gain power = %d, want 5000", half[ActuatorLeftMotor])
	}

	silent := m.Powers(v, 0)
	if silent[ActuatorLeftMotor] != 0 {
		t.Errorf("zero-gain power = %d, want 0", silent[ActuatorLeftMotor])
	}
}

func TestAxisHasActuator(t *testing.T) {
	m := DefaultActuatorMap()
	if !m.AxisHasActuator(element.AxisX) || !m.AxisHasActuator(element.AxisY) {
		t.Error("default map should actuate the X/Y plane")
	}
	if m.AxisHasActuator(element.AxisZ) {
		t.Error("default map should not actuate Z")
	}

	m.LeftImpulseTrigger = Actuator{Mode: ActuatorSingleAxis, Axis: element.AxisZ}
	if !m.AxisHasActuator(element.AxisZ) {
		t.Error("single-axis actuator on Z not reported")
	}
}

func TestDevice(t *testing.T) {
	d := NewDevice(DefaultActuatorMap())
	if d.Gain() != GainMaximum {
		t.Errorf("initial gain = %d, want %d", d.Gain(), GainMaximum)
	}
	if d.SetGain(GainMaximum + 1) {
		t.Error("gain above maximum accepted")
	}
	if !d.SetGain(2500) {
		t.Fatal("valid gain rejected")
	}

	var v MagnitudeVector
	v[element.AxisX] = 8000
	d.SetMagnitudeVector(v)
	if d.MagnitudeVector() != v {
		t.Error("stored vector does not round-trip")
	}

	powers := d.Powers()
	if powers[ActuatorLeftMotor] != 2000 {
		t.Errorf("power at quarter gain = %d, want 2000", powers[ActuatorLeftMotor])
	}

	d.Reset()
	if d.Powers() != (ActuatorPowers{}) {
		t.Error("reset should silence all actuators")
	}
}
