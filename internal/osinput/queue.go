package osinput

import "sync"

// KeyEvent is one recorded keyboard state transition.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// MouseButtonEvent is one recorded mouse button state transition.
type MouseButtonEvent struct {
	Button  MouseButton
	Pressed bool
}

const maxQueuedEvents = 256

// Queue is the default Sink: it deduplicates state reports into transition
// events and accumulates mouse motion until drained. Bounded; when full the
// newest events are dropped rather than blocking a mapper.
type Queue struct {
	mu           sync.Mutex
	keysDown     map[Key]bool
	buttonsDown  [MouseButtonCount]bool
	keyEvents    []KeyEvent
	buttonEvents []MouseButtonEvent
	motion       [MouseAxisCount]int32
}

func NewQueue() *Queue {
	return &Queue{keysDown: make(map[Key]bool)}
}

func (q *Queue) SubmitKeyState(key Key, pressed bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.keysDown[key] == pressed {
		return
	}
	q.keysDown[key] = pressed
	if len(q.keyEvents) < maxQueuedEvents {
		q.keyEvents = append(q.keyEvents, KeyEvent{Key: key, Pressed: pressed})
	}
}

func (q *Queue) SubmitMouseButtonState(button MouseButton, pressed bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.buttonsDown[button] == pressed {
		return
	}
	q.buttonsDown[button] = pressed
	if len(q.buttonEvents) < maxQueuedEvents {
		q.buttonEvents = append(q.buttonEvents, MouseButtonEvent{Button: button, Pressed: pressed})
	}
}

func (q *Queue) SubmitMouseMovement(axis MouseAxis, amount int32) {
	if axis < 0 || axis >= MouseAxisCount {
		return
	}
	q.mu.Lock()
	q.motion[axis] += amount
	q.mu.Unlock()
}

// KeyIsPressed reports the current deduplicated state of a key.
func (q *Queue) KeyIsPressed(key Key) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.keysDown[key]
}

// MouseButtonIsPressed reports the current deduplicated state of a button.
func (q *Queue) MouseButtonIsPressed(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buttonsDown[button]
}

// DrainKeyEvents returns and clears the pending key transitions.
func (q *Queue) DrainKeyEvents() []KeyEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.keyEvents
	q.keyEvents = nil
	return out
}

// DrainMouseButtonEvents returns and clears the pending button transitions.
func (q *Queue) DrainMouseButtonEvents() []MouseButtonEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.buttonEvents
	q.buttonEvents = nil
	return out
}

// DrainMouseMotion returns and clears the accumulated motion per axis.
func (q *Queue) DrainMouseMotion() [MouseAxisCount]int32 {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.motion
	q.motion = [MouseAxisCount]int32{}
	return out
}
