package virtual

import (
	"testing"

	"github.com/soar/padbridge/internal/element"
)

func axisEvent(v int32) Event {
	return Event{Element: element.AxisIdentifier(element.AxisX), Value: v}
}

func TestEventBufferOrderAndSequence(t *testing.T) {
	b := newEventBuffer()
	for i := int32(0); i < 5; i++ {
		b.append(axisEvent(i))
	}
	if b.count() != 5 {
		t.Fatalf("count = %d, want 5", b.count())
	}
	for i := 0; i < 5; i++ {
		ev, ok := b.at(i)
		if !ok || ev.Value != int32(i) || ev.Sequence != uint32(i) {
			t.Errorf("event %d = %+v, %v", i, ev, ok)
		}
	}
	if _, ok := b.at(5); ok {
		t.Error("read past the end succeeded")
	}
}

func TestEventBufferDropsNewestOnOverflow(t *testing.T) {
	b := newEventBuffer()
	if !b.setCapacity(3) {
		t.Fatal("setCapacity(3) failed")
	}
	for i := int32(0); i < 5; i++ {
		b.append(axisEvent(i))
	}
	if b.count() != 3 {
		t.Fatalf("count = %d, want 3", b.count())
	}
	if !b.overflowed {
		t.Error("overflow flag should be set")
	}
	// The oldest events survive; the newest were dropped.
	ev, _ := b.at(2)
	if ev.Value != 2 {
		t.Errorf("last surviving event value = %d, want 2", ev.Value)
	}

	popped := b.popOldest(2)
	if len(popped) != 2 || popped[0].Value != 0 || popped[1].Value != 1 {
		t.Errorf("popped = %+v", popped)
	}
	if b.overflowed {
		t.Error("pop should clear the overflow flag")
	}
	if b.count() != 1 {
		t.Errorf("count after pop = %d, want 1", b.count())
	}
}

func TestEventBufferPopMoreThanBuffered(t *testing.T) {
	b := newEventBuffer()
	b.append(axisEvent(1))
	popped := b.popOldest(10)
	if len(popped) != 1 {
		t.Errorf("popped %d events, want 1", len(popped))
	}
	if popped := b.popOldest(10); len(popped) != 0 {
		t.Errorf("popped %d events from empty buffer", len(popped))
	}
}

func TestEventBufferCapacityLimits(t *testing.T) {
	b := newEventBuffer()
	if b.setCapacity(0) {
		t.Error("capacity 0 accepted")
	}
	if b.setCapacity(MaxEventBufferCapacity + 1) {
		t.Error("capacity above maximum accepted")
	}
	if !b.setCapacity(MaxEventBufferCapacity) {
		t.Error("maximum capacity rejected")
	}

	// Shrinking below the current population truncates and flags overflow.
	for i := int32(0); i < 10; i++ {
		b.append(axisEvent(i))
	}
	if !b.setCapacity(4) {
		t.Fatal("setCapacity(4) failed")
	}
	if b.count() != 4 || !b.overflowed {
		t.Errorf("count = %d, overflowed = %v; want 4, true", b.count(), b.overflowed)
	}
}

func TestEventBufferDisableDiscards(t *testing.T) {
	b := newEventBuffer()
	b.append(axisEvent(1))
	b.setEnabled(false)
	if b.count() != 0 {
		t.Error("disabling should discard pending events")
	}
	b.append(axisEvent(2))
	if b.count() != 0 {
		t.Error("disabled buffer accepted an event")
	}
	b.setEnabled(true)
	b.append(axisEvent(3))
	if b.count() != 1 {
		t.Error("re-enabled buffer rejected an event")
	}
}

func TestEventFilterDefaultsToEverything(t *testing.T) {
	f := newEventFilter()
	for _, id := range element.AllIdentifiers() {
		if !f.contains(id) {
			t.Errorf("%s filtered out by default", id)
		}
	}
}

func TestEventFilterAddRemove(t *testing.T) {
	f := newEventFilter()
	b1 := element.ButtonIdentifier(0)

	if !f.remove(b1) {
		t.Fatal("remove failed")
	}
	if f.contains(b1) {
		t.Error("removed element still contained")
	}
	if !f.contains(element.ButtonIdentifier(1)) {
		t.Error("removal affected another element")
	}

	if !f.add(b1) {
		t.Fatal("add failed")
	}
	if !f.contains(b1) {
		t.Error("re-added element not contained")
	}
}

func TestEventFilterWholeController(t *testing.T) {
	f := newEventFilter()
	whole := element.WholeControllerIdentifier()

	if !f.remove(whole) {
		t.Fatal("whole-controller remove failed")
	}
	for _, id := range element.AllIdentifiers() {
		if f.contains(id) {
			t.Fatalf("%s still contained after removing everything", id)
		}
	}

	if !f.add(whole) {
		t.Fatal("whole-controller add failed")
	}
	if !f.contains(element.POVIdentifier()) {
		t.Error("POV missing after re-adding everything")
	}

	// The pseudo-element itself never matches.
	if f.contains(whole) {
		t.Error("whole-controller identifier should not be contained")
	}
}
