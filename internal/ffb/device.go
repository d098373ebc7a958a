package ffb

import "sync"

// Device is the per-registration force-feedback endpoint handed to an effect
// engine. It holds the controller's actuator map, the device gain, and the
// most recent magnitude vector, and translates between them on demand. Safe
// for concurrent use.
type Device struct {
	mu        sync.Mutex
	actuators ActuatorMap
	gain      uint32
	vector    MagnitudeVector
}

// NewDevice creates a device for the given actuator map with gain at full
// strength.
func NewDevice(actuators ActuatorMap) *Device {
	return &Device{
		actuators: actuators,
		gain:      GainMaximum,
	}
}

// Actuators returns the device's actuator map.
func (d *Device) Actuators() ActuatorMap {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.actuators
}

// Gain returns the current device gain.
func (d *Device) Gain() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gain
}

// SetGain updates the device gain. Values above GainMaximum are rejected.
func (d *Device) SetGain(gain uint32) bool {
	if gain > GainMaximum {
		return false
	}
	d.mu.Lock()
	d.gain = gain
	d.mu.Unlock()
	return true
}

// SetMagnitudeVector stores the latest force vector from the effect engine.
func (d *Device) SetMagnitudeVector(v MagnitudeVector) {
	d.mu.Lock()
	d.vector = v
	d.mu.Unlock()
}

// MagnitudeVector returns the most recently stored force vector.
func (d *Device) MagnitudeVector() MagnitudeVector {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.vector
}

// Powers translates the stored vector into per-actuator power levels using
// the current gain.
func (d *Device) Powers() ActuatorPowers {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.actuators.Powers(d.vector, d.gain)
}

// Reset zeroes the stored vector, silencing all actuators.
func (d *Device) Reset() {
	d.mu.Lock()
	d.vector = MagnitudeVector{}
	d.mu.Unlock()
}
