package hub

import (
	"github.com/soar/padbridge/internal/element"
	"github.com/soar/padbridge/internal/virtual"
)

// Snapshot is the JSON-friendly projection of a virtual controller's
// processed state.
type Snapshot struct {
	Controller int      `json:"controller"`
	Instance   string   `json:"instance"`
	Mapper     string   `json:"mapper"`
	Axes       []int32  `json:"axes"`
	Buttons    []bool   `json:"buttons"`
	POVAngle   int32    `json:"povAngle"`
	AxisNames  []string `json:"axisNames,omitempty"`
}

// EventRecord is one element change from the controller's event buffer.
type EventRecord struct {
	Element   string `json:"element"`
	Value     int32  `json:"value"`
	Timestamp uint64 `json:"timestamp"`
	Sequence  uint32 `json:"sequence"`
}

// BuildSnapshot captures the current processed state of vc. Only elements
// the controller's capabilities report are included.
func BuildSnapshot(vc *virtual.Controller) *Snapshot {
	caps := vc.Capabilities()
	state := vc.GetState()

	snap := &Snapshot{
		Controller: int(vc.Identifier()),
		Instance:   vc.Instance().String(),
		Mapper:     vc.DeviceMap().Name(),
		Axes:       make([]int32, 0, len(caps.Axes)),
		AxisNames:  make([]string, 0, len(caps.Axes)),
		Buttons:    make([]bool, caps.NumButtons),
		POVAngle:   element.POVAngleNeutral,
	}

	for _, ac := range caps.Axes {
		snap.Axes = append(snap.Axes, state.Axes[ac.Axis])
		snap.AxisNames = append(snap.AxisNames, ac.Axis.String())
	}
	for b := element.Button(0); int(b) < caps.NumButtons; b++ {
		snap.Buttons[b] = state.Buttons.Pressed(b)
	}
	if caps.HasPOV {
		snap.POVAngle = state.POV.Angle()
	}
	return snap
}

// BuildEventRecords converts buffered controller events for the wire.
func BuildEventRecords(events []virtual.Event) []EventRecord {
	if len(events) == 0 {
		return nil
	}
	out := make([]EventRecord, len(events))
	for i, ev := range events {
		out[i] = EventRecord{
			Element:   ev.Element.String(),
			Value:     ev.Value,
			Timestamp: ev.Timestamp,
			Sequence:  ev.Sequence,
		}
	}
	return out
}
