package hub

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/soar/padbridge/internal/virtual"
)

const fullSyncInterval = 5 * time.Second

// Broadcaster watches the virtual controllers and broadcasts their state to
// the hub: buffered element events as they arrive, plus a periodic full
// snapshot so late or lossy clients resynchronize.
type Broadcaster struct {
	hub         *Hub
	controllers []*virtual.Controller
	seqs        []atomic.Int64
}

func NewBroadcaster(h *Hub, controllers []*virtual.Controller) *Broadcaster {
	return &Broadcaster{
		hub:         h,
		controllers: controllers,
		seqs:        make([]atomic.Int64, len(controllers)),
	}
}

// Run watches all controllers until ctx is cancelled. Should be run in a
// goroutine.
func (b *Broadcaster) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for i := range b.controllers {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			b.watch(ctx, idx)
		}(i)
	}
	wg.Wait()
}

func (b *Broadcaster) watch(ctx context.Context, idx int) {
	vc := b.controllers[idx]
	ticker := time.NewTicker(fullSyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case _, ok := <-vc.StateChangeNotifications():
			if !ok {
				return
			}
			// Overflow means events were lost; fall back to a full
			// snapshot. Check before popping, which clears the flag.
			overflowed := vc.EventBufferOverflowed()
			events := vc.PopEvents(vc.EventCount())
			if overflowed {
				b.sendSnapshot(idx)
				continue
			}
			if len(events) > 0 {
				b.sendEvents(idx, events)
			}

		case <-ticker.C:
			if b.hub.WatcherCount(idx) > 0 {
				b.sendSnapshot(idx)
			}
		}
	}
}

// SendInitialState sends the current full snapshot of the given controller
// to a newly connected or newly switched client.
func (b *Broadcaster) SendInitialState(c *Client, controller int) bool {
	if controller < 0 || controller >= len(b.controllers) {
		return false
	}
	msg := NewSnapshotMessage(b.seqs[controller].Add(1), BuildSnapshot(b.controllers[controller]))
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling initial state: %v", err)
		return false
	}
	c.Send(data)
	return true
}

func (b *Broadcaster) sendSnapshot(idx int) {
	msg := NewSnapshotMessage(b.seqs[idx].Add(1), BuildSnapshot(b.controllers[idx]))
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling snapshot message: %v", err)
		return
	}
	b.hub.BroadcastToController(data, idx)
}

func (b *Broadcaster) sendEvents(idx int, events []virtual.Event) {
	msg := NewEventsMessage(b.seqs[idx].Add(1), BuildEventRecords(events))
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling events message: %v", err)
		return
	}
	b.hub.BroadcastToController(data, idx)
}
