package physical

import (
	"sync/atomic"

	"github.com/soar/padbridge/internal/ffb"
)

// ForceFeedbackRegistry arbitrates exclusive force-feedback ownership of
// physical controllers. At most one device buffer can be registered per
// controller at a time; registration is co-operative and never preempts or
// blocks. The zero value is ready to use.
type ForceFeedbackRegistry struct {
	owners [MaxControllers]atomic.Pointer[ffb.Device]
}

// Register attempts to claim the controller for dev. It fails, leaving the
// existing registration untouched, if another device is already registered.
// Registering the same device twice succeeds and is a no-op.
func (r *ForceFeedbackRegistry) Register(id ControllerID, dev *ffb.Device) bool {
	if id < 0 || int(id) >= MaxControllers || dev == nil {
		return false
	}
	if r.owners[id].CompareAndSwap(nil, dev) {
		return true
	}
	return r.owners[id].Load() == dev
}

// Unregister releases the controller if dev holds it. Idempotent; releasing
// a controller owned by a different device is a no-op.
func (r *ForceFeedbackRegistry) Unregister(id ControllerID, dev *ffb.Device) {
	if id < 0 || int(id) >= MaxControllers || dev == nil {
		return
	}
	r.owners[id].CompareAndSwap(dev, nil)
}

// Registered returns the device currently registered for the controller, or
// nil.
func (r *ForceFeedbackRegistry) Registered(id ControllerID) *ffb.Device {
	if id < 0 || int(id) >= MaxControllers {
		return nil
	}
	return r.owners[id].Load()
}
