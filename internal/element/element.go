// Package element defines the virtual controller data model: axes, buttons,
// POV hat directions, element identifiers and the canonical internal state
// record that element mappers write into.
package element

import (
	"fmt"
	"strings"
)

// Axis identifies one virtual analog axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisRotX
	AxisRotY
	AxisRotZ

	AxisCount
)

var axisNames = [AxisCount]string{"X", "Y", "Z", "RotX", "RotY", "RotZ"}

func (a Axis) String() string {
	if a < 0 || a >= AxisCount {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisNames[a]
}

// AxisFromString resolves an axis name, case-insensitively. Accepts both the
// long ("RotX") and the short ("RX") rotational names.
func AxisFromString(s string) (Axis, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, true
	case "y":
		return AxisY, true
	case "z":
		return AxisZ, true
	case "rotx", "rx":
		return AxisRotX, true
	case "roty", "ry":
		return AxisRotY, true
	case "rotz", "rz":
		return AxisRotZ, true
	}
	return 0, false
}

// Button identifies one virtual button, zero-based. Button(0) is presented to
// users as "B1".
type Button int

// ButtonCount is the number of virtual buttons a controller can expose.
const ButtonCount = 16

func (b Button) String() string {
	return fmt.Sprintf("B%d", int(b)+1)
}

// POVDirection identifies one of the four POV hat directions.
type POVDirection int

const (
	POVUp POVDirection = iota
	POVDown
	POVLeft
	POVRight

	POVDirectionCount
)

var povNames = [POVDirectionCount]string{"Up", "Down", "Left", "Right"}

func (d POVDirection) String() string {
	if d < 0 || d >= POVDirectionCount {
		return fmt.Sprintf("POVDirection(%d)", int(d))
	}
	return povNames[d]
}

// POVDirectionFromString resolves a POV direction name, case-insensitively.
func POVDirectionFromString(s string) (POVDirection, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return POVUp, true
	case "down", "dn", "d":
		return POVDown, true
	case "left", "lt", "l":
		return POVLeft, true
	case "right", "rt", "r":
		return POVRight, true
	}
	return 0, false
}

// Type tags an Identifier.
type Type int

const (
	TypeAxis Type = iota
	TypeButton
	TypePOV
	TypeWholeController
)

// Identifier names one addressable piece of virtual controller state.
// Exactly one payload field is meaningful, selected by Type; the POV hat and
// the whole-controller pseudo-element carry no payload.
type Identifier struct {
	Type   Type
	Axis   Axis
	Button Button
}

func AxisIdentifier(a Axis) Identifier {
	return Identifier{Type: TypeAxis, Axis: a}
}

func ButtonIdentifier(b Button) Identifier {
	return Identifier{Type: TypeButton, Button: b}
}

func POVIdentifier() Identifier {
	return Identifier{Type: TypePOV}
}

func WholeControllerIdentifier() Identifier {
	return Identifier{Type: TypeWholeController}
}

func (id Identifier) String() string {
	switch id.Type {
	case TypeAxis:
		return id.Axis.String()
	case TypeButton:
		return id.Button.String()
	case TypePOV:
		return "POV"
	case TypeWholeController:
		return "WholeController"
	}
	return fmt.Sprintf("Identifier(%d)", int(id.Type))
}

// DenseIndexCount is the size of the dense index space over all filterable
// elements: six axes, sixteen buttons and the POV hat.
const DenseIndexCount = int(AxisCount) + ButtonCount + 1

// DenseIndex maps an identifier into [0, DenseIndexCount). The
// whole-controller pseudo-element has no dense index and yields -1.
func (id Identifier) DenseIndex() int {
	switch id.Type {
	case TypeAxis:
		if id.Axis >= 0 && id.Axis < AxisCount {
			return int(id.Axis)
		}
	case TypeButton:
		if id.Button >= 0 && id.Button < ButtonCount {
			return int(AxisCount) + int(id.Button)
		}
	case TypePOV:
		return int(AxisCount) + ButtonCount
	}
	return -1
}

// AllIdentifiers returns every filterable element in dense-index order.
func AllIdentifiers() []Identifier {
	ids := make([]Identifier, 0, DenseIndexCount)
	for a := AxisX; a < AxisCount; a++ {
		ids = append(ids, AxisIdentifier(a))
	}
	for b := Button(0); b < ButtonCount; b++ {
		ids = append(ids, ButtonIdentifier(b))
	}
	ids = append(ids, POVIdentifier())
	return ids
}
