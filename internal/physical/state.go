// Package physical provides access to physical gamepads through a simple
// polled-state protocol: stick, trigger and digital-button readings plus a
// blocking wait-for-change primitive, and arbitrates exclusive force-feedback
// ownership per physical controller.
package physical

// ControllerID identifies one physical controller slot.
type ControllerID int

// MaxControllers is the number of physical controller slots.
const MaxControllers = 4

// Status reports the outcome of the most recent hardware read.
type Status int

const (
	StatusOK Status = iota
	StatusDisconnected
	StatusReadError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusDisconnected:
		return "disconnected"
	case StatusReadError:
		return "read error"
	}
	return "unknown"
}

// Stick axis slots within State.Sticks.
const (
	StickLeftX = iota
	StickLeftY
	StickRightX
	StickRightY

	StickAxisCount
)

// Trigger slots within State.Triggers.
const (
	TriggerLeft = iota
	TriggerRight

	TriggerCount
)

// Button identifies one physical digital button, including the d-pad
// directions.
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonLB
	ButtonRB
	ButtonBack
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonDpadUp
	ButtonDpadDown
	ButtonDpadLeft
	ButtonDpadRight

	ButtonPhysicalCount
)

var physicalButtonNames = [ButtonPhysicalCount]string{
	"A", "B", "X", "Y", "LB", "RB", "Back", "Start",
	"LS", "RS", "DpadUp", "DpadDown", "DpadLeft", "DpadRight",
}

func (b Button) String() string {
	if b < 0 || b >= ButtonPhysicalCount {
		return "unknown"
	}
	return physicalButtonNames[b]
}

// ButtonMask packs the digital button readings, one bit per Button.
type ButtonMask uint16

func (m ButtonMask) Pressed(b Button) bool {
	if b < 0 || b >= ButtonPhysicalCount {
		return false
	}
	return m&(1<<uint(b)) != 0
}

func (m *ButtonMask) SetPressed(b Button, pressed bool) {
	if b < 0 || b >= ButtonPhysicalCount {
		return
	}
	if pressed {
		*m |= 1 << uint(b)
	} else {
		*m &^= 1 << uint(b)
	}
}

// State is one polled reading of a physical controller. Compares field-wise
// with ==.
type State struct {
	Status   Status
	Sticks   [StickAxisCount]int16
	Triggers [TriggerCount]uint8
	Buttons  ButtonMask
}
