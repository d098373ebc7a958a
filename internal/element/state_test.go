package element

import "testing"

func TestPOVAngle(t *testing.T) {
	tests := []struct {
		name string
		pov  POVState
		want int32
	}{
		{"neutral", POVState{}, POVAngleNeutral},
		{"up", POVState{Up: true}, 0},
		{"up right", POVState{Up: true, Right: true}, 4500},
		{"right", POVState{Right: true}, 9000},
		{"down right", POVState{Down: true, Right: true}, 13500},
		{"down", POVState{Down: true}, 18000},
		{"down left", POVState{Down: true, Left: true}, 22500},
		{"left", POVState{Left: true}, 27000},
		{"up left", POVState{Up: true, Left: true}, 31500},
		{"opposing vertical", POVState{Up: true, Down: true}, POVAngleNeutral},
		{"opposing horizontal", POVState{Left: true, Right: true}, POVAngleNeutral},
		{"vertical cancels, right remains", POVState{Up: true, Down: true, Right: true}, 9000},
		{"all four", POVState{Up: true, Down: true, Left: true, Right: true}, POVAngleNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pov.Angle(); got != tt.want {
				t.Errorf("Angle() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestContributeAxisSaturates(t *testing.T) {
	var s State
	s.ContributeAxis(AxisX, 30000)
	s.ContributeAxis(AxisX, 30000)
	if s.Axes[AxisX] != AnalogMaximum {
		t.Errorf("positive overflow: got %d, want %d", s.Axes[AxisX], AnalogMaximum)
	}

	s = State{}
	s.ContributeAxis(AxisY, -30000)
	s.ContributeAxis(AxisY, -30000)
	if s.Axes[AxisY] != AnalogMinimum {
		t.Errorf("negative overflow: got %d, want %d", s.Axes[AxisY], AnalogMinimum)
	}

	// Out-of-range axes are ignored, not panics.
	s.ContributeAxis(AxisCount, 1)
	s.ContributeAxis(-1, 1)
}

func TestButtonSet(t *testing.T) {
	var s ButtonSet
	s.SetPressed(0, true)
	s.SetPressed(15, true)
	if !s.Pressed(0) || !s.Pressed(15) {
		t.Errorf("expected buttons 0 and 15 pressed, set = %016b", s)
	}
	if s.Pressed(1) {
		t.Error("button 1 should not be pressed")
	}
	s.SetPressed(0, false)
	if s.Pressed(0) {
		t.Error("button 0 should be released")
	}
	if s.Pressed(ButtonCount) || s.Pressed(-1) {
		t.Error("out-of-range buttons must read as released")
	}
}

func TestStateValue(t *testing.T) {
	var s State
	s.Axes[AxisRotZ] = -1234
	s.Buttons.SetPressed(3, true)
	s.POV.SetPressed(POVRight, true)

	if got := s.Value(AxisIdentifier(AxisRotZ)); got != -1234 {
		t.Errorf("axis value = %d, want -1234", got)
	}
	if got := s.Value(ButtonIdentifier(3)); got != 1 {
		t.Errorf("pressed button value = %d, want 1", got)
	}
	if got := s.Value(ButtonIdentifier(4)); got != 0 {
		t.Errorf("released button value = %d, want 0", got)
	}
	if got := s.Value(POVIdentifier()); got != 9000 {
		t.Errorf("POV value = %d, want 9000", got)
	}
	if got := s.Value(WholeControllerIdentifier()); got != 0 {
		t.Errorf("whole-controller value = %d, want 0", got)
	}
}

func TestDenseIndex(t *testing.T) {
	ids := AllIdentifiers()
	if len(ids) != DenseIndexCount {
		t.Fatalf("AllIdentifiers returned %d identifiers, want %d", len(ids), DenseIndexCount)
	}
	seen := make(map[int]bool)
	for _, id := range ids {
		i := id.DenseIndex()
		if i < 0 || i >= DenseIndexCount {
			t.Errorf("%s: dense index %d out of range", id, i)
		}
		if seen[i] {
			t.Errorf("%s: dense index %d assigned twice", id, i)
		}
		seen[i] = true
	}
	if got := WholeControllerIdentifier().DenseIndex(); got != -1 {
		t.Errorf("whole-controller dense index = %d, want -1", got)
	}
}

func TestAxisFromString(t *testing.T) {
	tests := []struct {
		in   string
		want Axis
		ok   bool
	}{
		{"X", AxisX, true},
		{"y", AxisY, true},
		{" RotX ", AxisRotX, true},
		{"rz", AxisRotZ, true},
		{"RY", AxisRotY, true},
		{"w", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := AxisFromString(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("AxisFromString(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
