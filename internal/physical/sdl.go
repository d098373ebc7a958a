package physical

import (
	"context"
	"log"
	"runtime"
	"sync"

	"github.com/jupiterrider/purego-sdl3/sdl"
)

const (
	sdlPollDelayNS = 2_000_000 // 500Hz hardware polling

	hatUp    uint8 = 0x01
	hatRight uint8 = 0x02
	hatDown  uint8 = 0x04
	hatLeft  uint8 = 0x08
)

type sdlJoystick struct {
	joystick *sdl.Joystick
	mapping  *sdlDeviceMapping
	name     string
	slot     ControllerID
}

// SDLSource reads physical gamepads through the SDL3 Joystick API and exposes
// them as polled controller slots. Joysticks are assigned to the lowest free
// slot on connect and keep it until removed.
type SDLSource struct {
	circleToSquarePercent uint32

	mu        sync.RWMutex
	states    [MaxControllers]State
	joysticks map[sdl.JoystickID]*sdlJoystick
	slotUsed  [MaxControllers]bool
}

// NewSDLSource creates an SDL-backed source. circleToSquarePercent (0..100)
// applies the stick gate correction to both sticks of every controller.
func NewSDLSource(circleToSquarePercent uint32) *SDLSource {
	s := &SDLSource{
		circleToSquarePercent: circleToSquarePercent,
		joysticks:             make(map[sdl.JoystickID]*sdlJoystick),
	}
	for i := range s.states {
		s.states[i].Status = StatusDisconnected
	}
	return s
}

// CurrentState returns the latest polled reading for the slot without
// blocking.
func (s *SDLSource) CurrentState(id ControllerID) State {
	if id < 0 || int(id) >= MaxControllers {
		return State{Status: StatusDisconnected}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[id]
}

// WaitForStateChange blocks until the slot's reading differs from lastKnown
// or ctx is cancelled.
func (s *SDLSource) WaitForStateChange(ctx context.Context, id ControllerID, lastKnown State) bool {
	return WaitByPolling(ctx, func() State { return s.CurrentState(id) }, lastKnown)
}

// Run initializes SDL and runs the event+polling loop on the current thread
// until ctx is cancelled. Must be called from a goroutine that the caller
// dedicates to it; it locks the OS thread for SDL's benefit.
func (s *SDLSource) Run(ctx context.Context) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if !sdl.Init(sdl.InitJoystick) {
		log.Fatalf("SDL Init failed: %s", sdl.GetError())
	}
	defer sdl.Quit()

	log.Println("SDL3 Joystick subsystem initialized")

	// Check for already-connected joysticks
	ids := sdl.GetJoysticks()
	for _, id := range ids {
		s.openJoystick(id)
	}

	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return
		default:
		}

		s.processEvents()
		s.pollAll()
		sdl.DelayNS(sdlPollDelayNS)
	}
}

func (s *SDLSource) processEvents() {
	var event sdl.Event
	for sdl.PollEvent(&event) {
		switch event.Type() {
		case sdl.EventJoystickAdded:
			devEvent := event.JDevice()
			s.openJoystick(devEvent.Which)

		case sdl.EventJoystickRemoved:
			devEvent := event.JDevice()
			s.removeJoystick(devEvent.Which)
		}
	}
}

func (s *SDLSource) openJoystick(instanceID sdl.JoystickID) {
	if _, exists := s.joysticks[instanceID]; exists {
		return
	}

	slot := ControllerID(-1)
	for i := 0; i < MaxControllers; i++ {
		if !s.slotUsed[i] {
			slot = ControllerID(i)
			break
		}
	}
	if slot < 0 {
		log.Printf("No free controller slot for joystick %d", instanceID)
		return
	}

	js := sdl.OpenJoystick(instanceID)
	if js == nil {
		log.Printf("Failed to open joystick %d: %s", instanceID, sdl.GetError())
		return
	}

	jsID := sdl.GetJoystickID(js)
	vendorID := sdl.GetJoystickVendor(js)
	productID := sdl.GetJoystickProduct(js)
	name := sdl.GetJoystickName(js)
	mapping := lookupSDLMapping(vendorID, productID)

	s.joysticks[jsID] = &sdlJoystick{
		joystick: js,
		mapping:  mapping,
		name:     name,
		slot:     slot,
	}
	s.slotUsed[slot] = true

	log.Printf("Controller %d connected: %s (VID=%04X PID=%04X) mapping=%s axes=%d buttons=%d hats=%d",
		slot, name, vendorID, productID, mapping.Name,
		sdl.GetNumJoystickAxes(js), sdl.GetNumJoystickButtons(js), sdl.GetNumJoystickHats(js))

	s.mu.Lock()
	s.states[slot] = State{Status: StatusOK}
	s.mu.Unlock()
}

func (s *SDLSource) removeJoystick(instanceID sdl.JoystickID) {
	info, exists := s.joysticks[instanceID]
	if !exists {
		return
	}

	log.Printf("Controller %d disconnected: %s", info.slot, info.name)
	sdl.CloseJoystick(info.joystick)
	delete(s.joysticks, instanceID)
	s.slotUsed[info.slot] = false

	s.mu.Lock()
	s.states[info.slot] = State{Status: StatusDisconnected}
	s.mu.Unlock()
}

func (s *SDLSource) closeAll() {
	for id, info := range s.joysticks {
		sdl.CloseJoystick(info.joystick)
		s.slotUsed[info.slot] = false
		delete(s.joysticks, id)
	}
	s.mu.Lock()
	for i := range s.states {
		s.states[i] = State{Status: StatusDisconnected}
	}
	s.mu.Unlock()
}

func (s *SDLSource) pollAll() {
	for _, info := range s.joysticks {
		s.pollOne(info)
	}
}

func (s *SDLSource) pollOne(info *sdlJoystick) {
	js := info.joystick
	if !sdl.JoystickConnected(js) {
		s.mu.Lock()
		s.states[info.slot] = State{Status: StatusReadError}
		s.mu.Unlock()
		return
	}

	state := State{Status: StatusOK}

	for _, am := range info.mapping.Axes {
		raw := sdl.GetJoystickAxis(js, am.Index)
		if am.IsTrigger {
			state.Triggers[am.Trigger] = normalizeTrigger(raw, am.RawMin, am.RawMax)
		} else {
			if am.Invert && raw != -32768 {
				raw = -raw
			}
			state.Sticks[am.Stick] = raw
		}
	}

	if s.circleToSquarePercent > 0 {
		state.Sticks[StickLeftX], state.Sticks[StickLeftY] = CircleToSquare(
			state.Sticks[StickLeftX], state.Sticks[StickLeftY], s.circleToSquarePercent)
		state.Sticks[StickRightX], state.Sticks[StickRightY] = CircleToSquare(
			state.Sticks[StickRightX], state.Sticks[StickRightY], s.circleToSquarePercent)
	}

	numButtons := sdl.GetNumJoystickButtons(js)
	for _, bm := range info.mapping.Buttons {
		if bm.Index >= numButtons {
			continue
		}
		state.Buttons.SetPressed(bm.Target, sdl.GetJoystickButton(js, bm.Index))
	}

	if info.mapping.HasHat && sdl.GetNumJoystickHats(js) > 0 {
		hat := sdl.GetJoystickHat(js, 0)
		state.Buttons.SetPressed(ButtonDpadUp, hat&hatUp != 0)
		state.Buttons.SetPressed(ButtonDpadRight, hat&hatRight != 0)
		state.Buttons.SetPressed(ButtonDpadDown, hat&hatDown != 0)
		state.Buttons.SetPressed(ButtonDpadLeft, hat&hatLeft != 0)
	}

	s.mu.Lock()
	s.states[info.slot] = state
	s.mu.Unlock()
}
