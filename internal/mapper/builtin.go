package mapper

import (
	"fmt"
	"strings"

	"github.com/soar/padbridge/internal/ffb"
)

func mustMapper(spec string) Mapper {
	m, err := FromString(spec)
	if err != nil {
		panic(fmt.Sprintf("built-in mapper %q: %v", spec, err))
	}
	return m
}

// StandardGamepad is the default device map: both sticks analog, triggers as
// extra buttons, d-pad on the POV hat, rumble motors driven by the planar
// force.
func StandardGamepad() *DeviceMap {
	return NewDeviceMap("StandardGamepad", Elements{
		StickLeftX:  mustMapper("Axis(X)"),
		StickLeftY:  mustMapper("Axis(Y)"),
		StickRightX: mustMapper("Axis(Z)"),
		StickRightY: mustMapper("Axis(RotZ)"),

		TriggerLT: mustMapper("Button(7)"),
		TriggerRT: mustMapper("Button(8)"),

		ButtonA:     mustMapper("Button(1)"),
		ButtonB:     mustMapper("Button(2)"),
		ButtonX:     mustMapper("Button(3)"),
		ButtonY:     mustMapper("Button(4)"),
		ButtonLB:    mustMapper("Button(5)"),
		ButtonRB:    mustMapper("Button(6)"),
		ButtonBack:  mustMapper("Button(9)"),
		ButtonStart: mustMapper("Button(10)"),
		ButtonLS:    mustMapper("Button(11)"),
		ButtonRS:    mustMapper("Button(12)"),

		DpadUp:    mustMapper("Pov(Up)"),
		DpadDown:  mustMapper("Pov(Down)"),
		DpadLeft:  mustMapper("Pov(Left)"),
		DpadRight: mustMapper("Pov(Right)"),
	}, ffb.DefaultActuatorMap())
}

// DigitalGamepad matches StandardGamepad but quantizes the sticks, for
// applications that treat analog axes as digital directions.
func DigitalGamepad() *DeviceMap {
	m := StandardGamepad()
	for slot, spec := range map[string]string{
		"StickLeftX":  "DigitalAxis(X)",
		"StickLeftY":  "DigitalAxis(Y)",
		"StickRightX": "DigitalAxis(Z)",
		"StickRightY": "DigitalAxis(RotZ)",
	} {
		m, _ = m.WithElement(slot, mustMapper(spec))
	}
	return NewDeviceMap("DigitalGamepad", m.elems, m.actuators)
}

var builtinMaps = map[string]func() *DeviceMap{
	"standardgamepad": StandardGamepad,
	"digitalgamepad":  DigitalGamepad,
}

// Named returns a fresh copy of a built-in device map by name.
func Named(name string) (*DeviceMap, bool) {
	f, ok := builtinMaps[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	return f(), true
}
