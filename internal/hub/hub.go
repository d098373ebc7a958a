// Package hub fans controller snapshots and event batches out to connected
// WebSocket monitor clients. Each client watches a single controller index.
package hub

import (
	"log"
	"sync"
)

// Hub tracks connected clients and routes messages to the ones watching a
// given controller.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	log.Printf("Client connected (total: %d)", n)
}

// Unregister removes a client and closes its send queue. Safe to call more
// than once for the same client.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
	}
	n := len(h.clients)
	h.mu.Unlock()

	if ok {
		close(c.send)
		log.Printf("Client disconnected (total: %d)", n)
	}
}

// BroadcastToController sends a message to every client watching the given
// controller index. Clients with a full send queue miss the message.
func (h *Hub) BroadcastToController(msg []byte, controller int) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if client.Controller() == controller {
			client.Send(msg)
		}
	}
}

// WatcherCount reports how many clients are watching the given controller.
func (h *Hub) WatcherCount(controller int) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for client := range h.clients {
		if client.Controller() == controller {
			n++
		}
	}
	return n
}
