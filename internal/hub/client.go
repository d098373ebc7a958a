package hub

import (
	"encoding/json"
	"log"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/soar/padbridge/internal/physical"
)

// InitialStater supplies the current full snapshot for a controller, used
// when a client connects or switches controllers.
type InitialStater interface {
	SendInitialState(c *Client, controller int) bool
}

// Client represents a connected WebSocket client.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	// controller index this client is watching; written by the read pump,
	// read by broadcaster goroutines.
	controller atomic.Int32
}

// NewClient creates a new Client attached to the hub.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 256),
	}
}

// Controller returns the controller index this client watches.
func (c *Client) Controller() int {
	return int(c.controller.Load())
}

// SetController sets the controller index this client watches.
func (c *Client) SetController(index int) {
	c.controller.Store(int32(index))
}

// Send queues a message for the client, dropping it when the client is
// backed up.
func (c *Client) Send(msg []byte) {
	select {
	case c.send <- msg:
	default:
	}
}

// WritePump sends messages from the send channel to the WebSocket connection.
func (c *Client) WritePump() {
	defer func() {
		c.conn.Close()
	}()

	for msg := range c.send {
		err := c.conn.WriteMessage(websocket.TextMessage, msg)
		if err != nil {
			break
		}
	}
}

// ReadPumpWithHandler reads messages from the WebSocket and handles client
// commands.
func (c *Client) ReadPumpWithHandler(initial InitialStater) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var clientMsg ClientMessage
		if err := json.Unmarshal(message, &clientMsg); err != nil {
			log.Printf("Error parsing client message: %v", err)
			continue
		}

		switch clientMsg.Type {
		case "select_controller":
			if clientMsg.Controller < 0 || clientMsg.Controller >= physical.MaxControllers {
				log.Printf("Failed to switch to controller %d: invalid index", clientMsg.Controller)
				continue
			}
			c.SetController(clientMsg.Controller)
			msg := NewControllerSelectedMessage(clientMsg.Controller)
			data, _ := json.Marshal(msg)
			c.Send(data)
			initial.SendInitialState(c, clientMsg.Controller)
			log.Printf("Client switched to controller %d", clientMsg.Controller)
		}
	}
}
