package physical

import (
	"context"
	"time"
)

// Polling cadence for WaitForStateChange implementations. Reads after a
// hardware error back off for longer before the next attempt.
const (
	PollInterval = 2 * time.Millisecond
	ErrorBackoff = 100 * time.Millisecond
)

// Source supplies polled physical controller state. CurrentState never
// blocks; WaitForStateChange blocks until the controller's state differs
// from lastKnown or the context is cancelled, returning false only on
// cancellation.
type Source interface {
	CurrentState(id ControllerID) State
	WaitForStateChange(ctx context.Context, id ControllerID, lastKnown State) bool
}

// WaitByPolling implements wait-for-change semantics on top of a non-blocking
// poll function, at PollInterval cadence with ErrorBackoff applied after
// reads that report a hardware error. Returns false if the context is
// cancelled first.
func WaitByPolling(ctx context.Context, poll func() State, lastKnown State) bool {
	timer := time.NewTimer(PollInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
		}

		current := poll()
		if current != lastKnown {
			return true
		}

		delay := PollInterval
		if current.Status == StatusReadError {
			delay = ErrorBackoff
		}
		timer.Reset(delay)
	}
}
