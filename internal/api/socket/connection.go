package socket

import (
	"sync"
	"time"

	"github.com/fasthttp/websocket"
	"github.com/google/uuid"
)

const (
	writeWait = time.Second * 10

	// sendQueueSize bounds the per-connection delivery queue. A client
	// that stops reading loses frames instead of stalling the emitter.
	sendQueueSize = 64
)

// connection wraps one websocket with a buffered, single-writer delivery
// queue. All frames pass through the queue so writes stay ordered.
type connection struct {
	token string
	ws    *websocket.Conn

	send chan []byte
	done chan struct{}

	closeOnce sync.Once
}

func newConnection(ws *websocket.Conn) *connection {
	c := &connection{
		token: uuid.NewString(),
		ws:    ws,
		send:  make(chan []byte, sendQueueSize),
		done:  make(chan struct{}),
	}

	go c.writePump()

	return c
}

func (c *connection) Token() string {
	return c.token
}

func (c *connection) Write(payload []byte) bool {
	select {
	case <-c.done:
		return false
	case c.send <- payload:
		return true
	default:
		// Queue full. Dropping keeps one slow client from blocking
		// every other delivery.
		return false
	}
}

func (c *connection) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.ws.Close()
	})
}

func (c *connection) writePump() {
	for {
		select {
		case <-c.done:
			return
		case payload := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))

			if err := c.ws.WriteMessage(websocket.TextMessage, payload); err != nil {
				c.Close()
				return
			}
		}
	}
}
