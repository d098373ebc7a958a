package mapper

import (
	"strings"

	"github.com/soar/padbridge/internal/element"
	"github.com/soar/padbridge/internal/ffb"
	"github.com/soar/padbridge/internal/physical"
)

// Elements assigns one element mapper to each physical input. Nil entries
// contribute nothing.
type Elements struct {
	StickLeftX  Mapper
	StickLeftY  Mapper
	StickRightX Mapper
	StickRightY Mapper

	TriggerLT Mapper
	TriggerRT Mapper

	ButtonA     Mapper
	ButtonB     Mapper
	ButtonX     Mapper
	ButtonY     Mapper
	ButtonLB    Mapper
	ButtonRB    Mapper
	ButtonBack  Mapper
	ButtonStart Mapper
	ButtonLS    Mapper
	ButtonRS    Mapper

	DpadUp    Mapper
	DpadDown  Mapper
	DpadLeft  Mapper
	DpadRight Mapper
}

// elementSlots is the fixed physical-element name table used by
// configuration to address individual slots. Read-only.
var elementSlots = map[string]func(*Elements) *Mapper{
	"stickleftx":  func(e *Elements) *Mapper { return &e.StickLeftX },
	"sticklefty":  func(e *Elements) *Mapper { return &e.StickLeftY },
	"stickrightx": func(e *Elements) *Mapper { return &e.StickRightX },
	"stickrighty": func(e *Elements) *Mapper { return &e.StickRightY },
	"triggerlt":   func(e *Elements) *Mapper { return &e.TriggerLT },
	"triggerrt":   func(e *Elements) *Mapper { return &e.TriggerRT },
	"buttona":     func(e *Elements) *Mapper { return &e.ButtonA },
	"buttonb":     func(e *Elements) *Mapper { return &e.ButtonB },
	"buttonx":     func(e *Elements) *Mapper { return &e.ButtonX },
	"buttony":     func(e *Elements) *Mapper { return &e.ButtonY },
	"buttonlb":    func(e *Elements) *Mapper { return &e.ButtonLB },
	"buttonrb":    func(e *Elements) *Mapper { return &e.ButtonRB },
	"buttonback":  func(e *Elements) *Mapper { return &e.ButtonBack },
	"buttonstart": func(e *Elements) *Mapper { return &e.ButtonStart },
	"buttonls":    func(e *Elements) *Mapper { return &e.ButtonLS },
	"buttonrs":    func(e *Elements) *Mapper { return &e.ButtonRS },
	"dpadup":      func(e *Elements) *Mapper { return &e.DpadUp },
	"dpaddown":    func(e *Elements) *Mapper { return &e.DpadDown },
	"dpadleft":    func(e *Elements) *Mapper { return &e.DpadLeft },
	"dpadright":   func(e *Elements) *Mapper { return &e.DpadRight },
}

// SetByName assigns a mapper to the named physical element slot. Returns
// false for unknown names.
func (e *Elements) SetByName(name string, m Mapper) bool {
	slot, ok := elementSlots[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return false
	}
	*slot(e) = m
	return true
}

// IsValidElementName reports whether name addresses a physical element slot.
func IsValidElementName(name string) bool {
	_, ok := elementSlots[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

func (e Elements) all() []Mapper {
	return []Mapper{
		e.StickLeftX, e.StickLeftY, e.StickRightX, e.StickRightY,
		e.TriggerLT, e.TriggerRT,
		e.ButtonA, e.ButtonB, e.ButtonX, e.ButtonY, e.ButtonLB, e.ButtonRB,
		e.ButtonBack, e.ButtonStart, e.ButtonLS, e.ButtonRS,
		e.DpadUp, e.DpadDown, e.DpadLeft, e.DpadRight,
	}
}

func (e Elements) buttonFor(b physical.Button) Mapper {
	switch b {
	case physical.ButtonA:
		return e.ButtonA
	case physical.ButtonB:
		return e.ButtonB
	case physical.ButtonX:
		return e.ButtonX
	case physical.ButtonY:
		return e.ButtonY
	case physical.ButtonLB:
		return e.ButtonLB
	case physical.ButtonRB:
		return e.ButtonRB
	case physical.ButtonBack:
		return e.ButtonBack
	case physical.ButtonStart:
		return e.ButtonStart
	case physical.ButtonLeftStick:
		return e.ButtonLS
	case physical.ButtonRightStick:
		return e.ButtonRS
	case physical.ButtonDpadUp:
		return e.DpadUp
	case physical.ButtonDpadDown:
		return e.DpadDown
	case physical.ButtonDpadLeft:
		return e.DpadLeft
	case physical.ButtonDpadRight:
		return e.DpadRight
	}
	return nil
}

func (e Elements) clone() Elements {
	cloneOne := func(m Mapper) Mapper {
		if m == nil {
			return nil
		}
		return m.Clone()
	}
	return Elements{
		StickLeftX:  cloneOne(e.StickLeftX),
		StickLeftY:  cloneOne(e.StickLeftY),
		StickRightX: cloneOne(e.StickRightX),
		StickRightY: cloneOne(e.StickRightY),
		TriggerLT:   cloneOne(e.TriggerLT),
		TriggerRT:   cloneOne(e.TriggerRT),
		ButtonA:     cloneOne(e.ButtonA),
		ButtonB:     cloneOne(e.ButtonB),
		ButtonX:     cloneOne(e.ButtonX),
		ButtonY:     cloneOne(e.ButtonY),
		ButtonLB:    cloneOne(e.ButtonLB),
		ButtonRB:    cloneOne(e.ButtonRB),
		ButtonBack:  cloneOne(e.ButtonBack),
		ButtonStart: cloneOne(e.ButtonStart),
		ButtonLS:    cloneOne(e.ButtonLS),
		ButtonRS:    cloneOne(e.ButtonRS),
		DpadUp:      cloneOne(e.DpadUp),
		DpadDown:    cloneOne(e.DpadDown),
		DpadLeft:    cloneOne(e.DpadLeft),
		DpadRight:   cloneOne(e.DpadRight),
	}
}

// Physical element ordinals used in SourceID tags.
const (
	sourceStickBase   = 0
	sourceTriggerBase = sourceStickBase + physical.StickAxisCount
	sourceButtonBase  = sourceTriggerBase + physical.TriggerCount
)

// DeviceMap binds element mappers to every physical input of one controller
// type and carries its force-feedback actuator assignment. Immutable once
// built; capabilities are derived at construction.
type DeviceMap struct {
	name      string
	elems     Elements
	actuators ffb.ActuatorMap
	caps      element.Capabilities
}

// NewDeviceMap builds a device map from an element assignment. The elements
// are deep-cloned, so the caller's mappers stay independent.
func NewDeviceMap(name string, elems Elements, actuators ffb.ActuatorMap) *DeviceMap {
	m := &DeviceMap{
		name:      name,
		elems:     elems.clone(),
		actuators: actuators,
	}
	m.caps = m.deriveCapabilities()
	return m
}

func (m *DeviceMap) Name() string { return m.name }

// Capabilities returns the virtual controller shape this map produces.
func (m *DeviceMap) Capabilities() element.Capabilities { return m.caps }

// Actuators returns the force-feedback actuator assignment.
func (m *DeviceMap) Actuators() ffb.ActuatorMap { return m.actuators }

// Elements returns a deep copy of the element assignment.
func (m *DeviceMap) Elements() Elements { return m.elems.clone() }

// Clone returns a deep copy.
func (m *DeviceMap) Clone() *DeviceMap {
	return NewDeviceMap(m.name, m.elems, m.actuators)
}

// WithElement returns a copy of the map with the named physical element slot
// replaced. A nil mapper clears the slot. Returns false for unknown names.
func (m *DeviceMap) WithElement(name string, mp Mapper) (*DeviceMap, bool) {
	elems := m.elems.clone()
	if !elems.SetByName(name, mp) {
		return nil, false
	}
	return NewDeviceMap(m.name, elems, m.actuators), true
}

// WithActuators returns a copy of the map with a different actuator
// assignment.
func (m *DeviceMap) WithActuators(actuators ffb.ActuatorMap) *DeviceMap {
	return NewDeviceMap(m.name, m.elems, actuators)
}

// Map aggregates one physical reading into a fresh internal state by running
// every physical element through its mapper.
func (m *DeviceMap) Map(id physical.ControllerID, raw physical.State) element.State {
	var s element.State

	sticks := [physical.StickAxisCount]Mapper{
		m.elems.StickLeftX, m.elems.StickLeftY, m.elems.StickRightX, m.elems.StickRightY,
	}
	for i, mp := range sticks {
		if mp != nil {
			mp.ContributeFromAnalog(&s, raw.Sticks[i], SourceID{Controller: id, Element: sourceStickBase + i})
		}
	}

	triggers := [physical.TriggerCount]Mapper{m.elems.TriggerLT, m.elems.TriggerRT}
	for i, mp := range triggers {
		if mp != nil {
			mp.ContributeFromTrigger(&s, raw.Triggers[i], SourceID{Controller: id, Element: sourceTriggerBase + i})
		}
	}

	for b := physical.Button(0); b < physical.ButtonPhysicalCount; b++ {
		if mp := m.elems.buttonFor(b); mp != nil {
			mp.ContributeFromButton(&s, raw.Buttons.Pressed(b), SourceID{Controller: id, Element: sourceButtonBase + int(b)})
		}
	}

	return s
}

// Neutral drives every mapper with a neutral contribution, releasing the
// side effects of keyboard and mouse mappers.
func (m *DeviceMap) Neutral(id physical.ControllerID) element.State {
	var s element.State
	for i, mp := range m.elems.all() {
		if mp != nil {
			mp.ContributeNeutral(&s, SourceID{Controller: id, Element: i})
		}
	}
	return s
}

func (m *DeviceMap) deriveCapabilities() element.Capabilities {
	var axisPresent [element.AxisCount]bool
	maxButton := -1
	hasPOV := false

	for _, mp := range m.elems.all() {
		if mp == nil {
			continue
		}
		for i := 0; i < mp.TargetElementCount(); i++ {
			id, ok := mp.TargetElementAt(i)
			if !ok {
				continue
			}
			switch id.Type {
			case element.TypeAxis:
				axisPresent[id.Axis] = true
			case element.TypeButton:
				if int(id.Button) > maxButton {
					maxButton = int(id.Button)
				}
			case element.TypePOV:
				hasPOV = true
			}
		}
	}

	caps := element.Capabilities{
		NumButtons: maxButton + 1,
		HasPOV:     hasPOV,
	}
	for a := element.AxisX; a < element.AxisCount; a++ {
		if axisPresent[a] {
			caps.Axes = append(caps.Axes, element.AxisCapability{
				Axis:                  a,
				SupportsForceFeedback: m.actuators.AxisHasActuator(a),
			})
		}
	}
	return caps
}
