package osinput

import "sync"

// DefaultSpeedPercent is the mouse speed applied when no configuration or
// override is in effect.
const DefaultSpeedPercent uint32 = 100

var speed = speedState{base: DefaultSpeedPercent}

type speedState struct {
	mu        sync.Mutex
	base      uint32
	overrides map[any]uint32
}

// SetBaseSpeedPercent sets the global mouse speed scale (percent, 100 =
// unscaled).
func SetBaseSpeedPercent(percent uint32) {
	speed.mu.Lock()
	speed.base = percent
	speed.mu.Unlock()
}

// BaseSpeedPercent returns the configured global mouse speed scale.
func BaseSpeedPercent() uint32 {
	speed.mu.Lock()
	defer speed.mu.Unlock()
	return speed.base
}

// PushSpeedOverride activates a speed override keyed by an opaque token,
// typically the mapper driving it. While any override is active the highest
// one wins over the base speed.
func PushSpeedOverride(token any, percent uint32) {
	speed.mu.Lock()
	if speed.overrides == nil {
		speed.overrides = make(map[any]uint32)
	}
	speed.overrides[token] = percent
	speed.mu.Unlock()
}

// PopSpeedOverride deactivates the override for the token. Idempotent.
func PopSpeedOverride(token any) {
	speed.mu.Lock()
	delete(speed.overrides, token)
	speed.mu.Unlock()
}

// EffectiveSpeedPercent returns the mouse speed scale currently in effect.
func EffectiveSpeedPercent() uint32 {
	speed.mu.Lock()
	defer speed.mu.Unlock()
	if len(speed.overrides) == 0 {
		return speed.base
	}
	best := uint32(0)
	for _, p := range speed.overrides {
		if p > best {
			best = p
		}
	}
	return best
}
