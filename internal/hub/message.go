package hub

import (
	"time"
)

// WSMessage represents a WebSocket message sent from server to client.
type WSMessage struct {
	Type       string        `json:"type"`                 // Message type: "snapshot", "events", "controller_selected"
	Seq        int64         `json:"seq"`                  // Sequence number for ordering
	Timestamp  int64         `json:"timestamp"`            // Unix timestamp in milliseconds
	Data       *Snapshot     `json:"data,omitempty"`       // Full virtual state for type "snapshot"
	Events     []EventRecord `json:"events,omitempty"`     // Element changes for type "events"
	Controller int           `json:"controller,omitempty"` // Controller index for type "controller_selected"
}

// NewSnapshotMessage creates a "snapshot" message carrying the complete
// virtual controller state.
func NewSnapshotMessage(seq int64, snap *Snapshot) *WSMessage {
	return &WSMessage{
		Type:      "snapshot",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Data:      snap,
	}
}

// NewEventsMessage creates an "events" message carrying buffered element
// changes since the last snapshot.
func NewEventsMessage(seq int64, events []EventRecord) *WSMessage {
	return &WSMessage{
		Type:      "events",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Events:    events,
	}
}

// NewControllerSelectedMessage creates a "controller_selected" confirmation.
func NewControllerSelectedMessage(controller int) *WSMessage {
	return &WSMessage{
		Type:       "controller_selected",
		Timestamp:  time.Now().UnixMilli(),
		Controller: controller,
	}
}

// ClientMessage represents a message sent from the client to the server.
type ClientMessage struct {
	Type       string `json:"type"`
	Controller int    `json:"controller,omitempty"`
}
