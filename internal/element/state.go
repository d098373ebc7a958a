package element

// Value ranges for the canonical internal state. Axis values are centered on
// zero; trigger readings arrive in the 0..255 range and are rescaled by the
// mappers that consume them.
const (
	AnalogMinimum int32 = -32768
	AnalogMaximum int32 = 32767
	AnalogNeutral int32 = 0

	TriggerMinimum int32 = 0
	TriggerMaximum int32 = 255
)

// ButtonSet holds the pressed/released state of all virtual buttons, one bit
// per button.
type ButtonSet uint16

func (s ButtonSet) Pressed(b Button) bool {
	if b < 0 || b >= ButtonCount {
		return false
	}
	return s&(1<<uint(b)) != 0
}

func (s *ButtonSet) SetPressed(b Button, pressed bool) {
	if b < 0 || b >= ButtonCount {
		return
	}
	if pressed {
		*s |= 1 << uint(b)
	} else {
		*s &^= 1 << uint(b)
	}
}

// POVState holds the POV hat as four independent direction flags. The
// aggregate hat value is derived on demand by Angle.
type POVState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

func (p POVState) Pressed(d POVDirection) bool {
	switch d {
	case POVUp:
		return p.Up
	case POVDown:
		return p.Down
	case POVLeft:
		return p.Left
	case POVRight:
		return p.Right
	}
	return false
}

func (p *POVState) SetPressed(d POVDirection, pressed bool) {
	switch d {
	case POVUp:
		p.Up = pressed
	case POVDown:
		p.Down = pressed
	case POVLeft:
		p.Left = pressed
	case POVRight:
		p.Right = pressed
	}
}

// POVAngleNeutral is the aggregate value reported while no direction is
// active, or while opposing directions cancel out.
const POVAngleNeutral int32 = -1

// Angle returns the aggregate hat value in hundredths of degrees clockwise
// from north, or POVAngleNeutral when centered. Opposing directions cancel.
func (p POVState) Angle() int32 {
	vert := 0
	if p.Up {
		vert++
	}
	if p.Down {
		vert--
	}
	horiz := 0
	if p.Right {
		horiz++
	}
	if p.Left {
		horiz--
	}

	switch {
	case vert > 0 && horiz == 0:
		return 0
	case vert > 0 && horiz > 0:
		return 4500
	case vert == 0 && horiz > 0:
		return 9000
	case vert < 0 && horiz > 0:
		return 13500
	case vert < 0 && horiz == 0:
		return 18000
	case vert < 0 && horiz < 0:
		return 22500
	case vert == 0 && horiz < 0:
		return 27000
	case vert > 0 && horiz < 0:
		return 31500
	}
	return POVAngleNeutral
}

// State is the canonical internal controller state. Mappers contribute into
// it; the virtual controller's property transform reads and rewrites the axis
// values. Two states compare equal field-wise with ==.
type State struct {
	Axes    [AxisCount]int32
	Buttons ButtonSet
	POV     POVState
}

// ContributeAxis adds an axis contribution, saturating at the analog extremes
// so that stacked contributions from multiple mappers cannot overflow.
func (s *State) ContributeAxis(a Axis, amount int32) {
	if a < 0 || a >= AxisCount {
		return
	}
	v := s.Axes[a] + amount
	if v > AnalogMaximum {
		v = AnalogMaximum
	} else if v < AnalogMinimum {
		v = AnalogMinimum
	}
	s.Axes[a] = v
}

// Value returns the state's reading for one element: the axis value, 1/0 for
// a button, or the aggregate hat angle for the POV. The whole-controller
// pseudo-element has no value and yields 0.
func (s *State) Value(id Identifier) int32 {
	switch id.Type {
	case TypeAxis:
		if id.Axis >= 0 && id.Axis < AxisCount {
			return s.Axes[id.Axis]
		}
	case TypeButton:
		if s.Buttons.Pressed(id.Button) {
			return 1
		}
		return 0
	case TypePOV:
		return s.POV.Angle()
	}
	return 0
}
