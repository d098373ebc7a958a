package element

// AxisCapability describes one present virtual axis.
type AxisCapability struct {
	Axis                  Axis
	SupportsForceFeedback bool
}

// Capabilities describes the shape of a virtual controller. Derived once
// from a device map and immutable afterwards. The axis list is ordered by
// Axis value and stays stable for the lifetime of the controller.
type Capabilities struct {
	Axes       []AxisCapability
	NumButtons int
	HasPOV     bool
}

// HasAxis reports whether the given axis is present.
func (c Capabilities) HasAxis(a Axis) bool {
	return c.AxisIndex(a) >= 0
}

// AxisIndex returns the position of the given axis within the ordered
// present-axis list, or -1 if absent.
func (c Capabilities) AxisIndex(a Axis) int {
	for i, ac := range c.Axes {
		if ac.Axis == a {
			return i
		}
	}
	return -1
}

// ForceFeedbackAxisCount returns how many present axes support force
// feedback.
func (c Capabilities) ForceFeedbackAxisCount() int {
	n := 0
	for _, ac := range c.Axes {
		if ac.SupportsForceFeedback {
			n++
		}
	}
	return n
}

// HasElement reports whether the identified element exists on a controller
// with these capabilities.
func (c Capabilities) HasElement(id Identifier) bool {
	switch id.Type {
	case TypeAxis:
		return c.HasAxis(id.Axis)
	case TypeButton:
		return int(id.Button) >= 0 && int(id.Button) < c.NumButtons
	case TypePOV:
		return c.HasPOV
	case TypeWholeController:
		return true
	}
	return false
}
