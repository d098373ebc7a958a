// Package osinput collects keyboard and mouse events generated as mapper
// side effects. The events are consumed by whatever host-integration layer
// embeds this core; the package itself never touches the OS.
package osinput

import "sync"

// Key is a keyboard key, numbered with Linux input-event keycodes.
type Key uint16

// Named keys used by mapper configurations. The parser also accepts raw
// numeric keycodes for anything not listed here.
const (
	KeyEsc        Key = 1
	Key1          Key = 2
	Key2          Key = 3
	Key3          Key = 4
	Key4          Key = 5
	Key5          Key = 6
	Key6          Key = 7
	Key7          Key = 8
	Key8          Key = 9
	Key9          Key = 10
	Key0          Key = 11
	KeyBackspace  Key = 14
	KeyTab        Key = 15
	KeyQ          Key = 16
	KeyW          Key = 17
	KeyE          Key = 18
	KeyR          Key = 19
	KeyT          Key = 20
	KeyY          Key = 21
	KeyU          Key = 22
	KeyI          Key = 23
	KeyO          Key = 24
	KeyP          Key = 25
	KeyEnter      Key = 28
	KeyLeftCtrl   Key = 29
	KeyA          Key = 30
	KeyS          Key = 31
	KeyD          Key = 32
	KeyF          Key = 33
	KeyG          Key = 34
	KeyH          Key = 35
	KeyJ          Key = 36
	KeyK          Key = 37
	KeyL          Key = 38
	KeyLeftShift  Key = 42
	KeyZ          Key = 44
	KeyX          Key = 45
	KeyC          Key = 46
	KeyV          Key = 47
	KeyB          Key = 48
	KeyN          Key = 49
	KeyM          Key = 50
	KeyLeftAlt    Key = 56
	KeySpace      Key = 57
	KeyF1         Key = 59
	KeyF2         Key = 60
	KeyF3         Key = 61
	KeyF4         Key = 62
	KeyF5         Key = 63
	KeyF6         Key = 64
	KeyF7         Key = 65
	KeyF8         Key = 66
	KeyF9         Key = 67
	KeyF10        Key = 68
	KeyF11        Key = 87
	KeyF12        Key = 88
	KeyHome       Key = 102
	KeyUpArrow    Key = 103
	KeyPageUp     Key = 104
	KeyLeftArrow  Key = 105
	KeyRightArrow Key = 106
	KeyEnd        Key = 107
	KeyDownArrow  Key = 108
	KeyPageDown   Key = 109
	KeyInsert     Key = 110
	KeyDelete     Key = 111
)

// MouseButton identifies one mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseX1
	MouseX2

	MouseButtonCount
)

// MouseAxis identifies one axis of pointer or wheel motion.
type MouseAxis int

const (
	MouseAxisX MouseAxis = iota
	MouseAxisY
	MouseWheelHorizontal
	MouseWheelVertical

	MouseAxisCount
)

// Sink receives the side effects of keyboard and mouse mappers. Submissions
// are state reports, not edges: implementations deduplicate repeat reports
// themselves.
type Sink interface {
	SubmitKeyState(key Key, pressed bool)
	SubmitMouseButtonState(button MouseButton, pressed bool)
	SubmitMouseMovement(axis MouseAxis, amount int32)
}

var (
	sinkMu      sync.RWMutex
	currentSink Sink = NewQueue()
)

// SetSink replaces the active sink, returning the previous one. Intended for
// host-integration layers and tests.
func SetSink(s Sink) Sink {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	prev := currentSink
	currentSink = s
	return prev
}

// ActiveSink returns the sink mapper side effects currently go to.
func ActiveSink() Sink {
	sinkMu.RLock()
	defer sinkMu.RUnlock()
	return currentSink
}

// SubmitKeyState forwards a keyboard state report to the active sink.
func SubmitKeyState(key Key, pressed bool) {
	ActiveSink().SubmitKeyState(key, pressed)
}

// SubmitMouseButtonState forwards a mouse button state report to the active
// sink.
func SubmitMouseButtonState(button MouseButton, pressed bool) {
	ActiveSink().SubmitMouseButtonState(button, pressed)
}

// SubmitMouseMovement forwards pointer or wheel motion to the active sink,
// scaled by the effective mouse speed.
func SubmitMouseMovement(axis MouseAxis, amount int32) {
	scaled := int64(amount) * int64(EffectiveSpeedPercent()) / 100
	if scaled == 0 {
		return
	}
	ActiveSink().SubmitMouseMovement(axis, int32(scaled))
}
