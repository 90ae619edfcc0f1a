package ws

import (
	"encoding/json"
	"sync"

	"upipay_backend/internal/logger"

	"github.com/gorilla/websocket"
)

// IncomingMessage is the only inbound frame clients send:
// {"type":"subscribe","reference":"..."}.
type IncomingMessage struct {
	Type      string `json:"type"`
	Reference string `json:"reference"`
}

type errorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type connectedMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Client is one live connection. Outbound messages flow through the
// buffered Send channel consumed by writePump; trySend never blocks the
// publisher.
type Client struct {
	conn    *websocket.Conn
	manager *Manager

	Send chan any

	closeOnce sync.Once
}

func newClient(conn *websocket.Conn, manager *Manager) *Client {
	return &Client{
		conn:    conn,
		manager: manager,
		Send:    make(chan any, 16),
	}
}

// trySend queues a message without blocking. Returns false when the buffer
// is full or the channel is closed; the caller then drops the client.
func (c *Client) trySend(msg any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	select {
	case c.Send <- msg:
		return true
	default:
		return false
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		c.manager.Unsubscribe(c)
		close(c.Send)
		_ = c.conn.Close()
	})
}

// readPump processes subscribe frames until the connection drops. Closing
// implicitly unsubscribes; in-flight transitions are unaffected.
func (c *Client) readPump() {
	defer c.close()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg IncomingMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.trySend(errorMessage{Type: "error", Message: "Invalid message format"})
			continue
		}

		switch {
		case msg.Type == "subscribe" && msg.Reference != "":
			c.manager.Subscribe(c, msg.Reference)
		default:
			c.trySend(errorMessage{Type: "error", Message: "Unsupported message type"})
		}
	}
}

func (c *Client) writePump() {
	for msg := range c.Send {
		if err := c.conn.WriteJSON(msg); err != nil {
			logger.Debug("ws write failed, dropping client", "error", err.Error())
			c.close()
			return
		}
	}
}
