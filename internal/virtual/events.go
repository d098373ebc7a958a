package virtual

import "github.com/soar/padbridge/internal/element"

// Event buffer sizing.
const (
	DefaultEventBufferCapacity = 64
	MaxEventBufferCapacity     = 1024
)

// Event is one buffered state change on a single virtual element.
type Event struct {
	Element   element.Identifier
	Value     int32
	Timestamp uint64 // milliseconds
	Sequence  uint32 // monotonically increasing, wraps
}

// eventBuffer stores state-change events in insertion order with bounded
// capacity. When full it drops the incoming event and raises the overflow
// flag; it never blocks. Synchronization is the owning controller's job.
type eventBuffer struct {
	events     []Event
	capacity   int
	enabled    bool
	overflowed bool
	nextSeq    uint32
}

func newEventBuffer() eventBuffer {
	return eventBuffer{
		capacity: DefaultEventBufferCapacity,
		enabled:  true,
	}
}

func (b *eventBuffer) append(ev Event) {
	if !b.enabled {
		return
	}
	if len(b.events) >= b.capacity {
		b.overflowed = true
		return
	}
	ev.Sequence = b.nextSeq
	b.nextSeq++
	b.events = append(b.events, ev)
}

func (b *eventBuffer) count() int {
	return len(b.events)
}

func (b *eventBuffer) at(i int) (Event, bool) {
	if i < 0 || i >= len(b.events) {
		return Event{}, false
	}
	return b.events[i], true
}

// popOldest removes and returns up to n events from the front and clears the
// overflow flag.
func (b *eventBuffer) popOldest(n int) []Event {
	b.overflowed = false
	if n <= 0 {
		return nil
	}
	if n > len(b.events) {
		n = len(b.events)
	}
	out := make([]Event, n)
	copy(out, b.events[:n])
	b.events = append(b.events[:0], b.events[n:]...)
	return out
}

func (b *eventBuffer) setCapacity(n int) bool {
	if n < 1 || n > MaxEventBufferCapacity {
		return false
	}
	b.capacity = n
	if len(b.events) > n {
		b.events = b.events[:n]
		b.overflowed = true
	}
	return true
}

func (b *eventBuffer) setEnabled(enabled bool) {
	b.enabled = enabled
	if !enabled {
		b.events = nil
		b.overflowed = false
	}
}

// eventFilter selects which virtual elements produce buffered events, one
// bit per dense element index. The default admits every element.
type eventFilter struct {
	mask uint32
}

func newEventFilter() eventFilter {
	f := eventFilter{}
	f.addAll()
	return f
}

func (f *eventFilter) contains(id element.Identifier) bool {
	i := id.DenseIndex()
	if i < 0 {
		return false
	}
	return f.mask&(1<<uint(i)) != 0
}

func (f *eventFilter) add(id element.Identifier) bool {
	if id.Type == element.TypeWholeController {
		f.addAll()
		return true
	}
	i := id.DenseIndex()
	if i < 0 {
		return false
	}
	f.mask |= 1 << uint(i)
	return true
}

func (f *eventFilter) remove(id element.Identifier) bool {
	if id.Type == element.TypeWholeController {
		f.removeAll()
		return true
	}
	i := id.DenseIndex()
	if i < 0 {
		return false
	}
	f.mask &^= 1 << uint(i)
	return true
}

func (f *eventFilter) addAll() {
	f.mask = (1 << uint(element.DenseIndexCount)) - 1
}

func (f *eventFilter) removeAll() {
	f.mask = 0
}
