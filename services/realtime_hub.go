package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write one frame to a client.
	writeWait = 10 * time.Second
	// Frames queued per client before it is treated as stalled and dropped.
	sendBuffer = 16
)

type WSClient struct {
	Conn *websocket.Conn
	send chan []byte
}

func NewWSClient(conn *websocket.Conn) *WSClient {
	return &WSClient{Conn: conn, send: make(chan []byte, sendBuffer)}
}

// WritePump is the only writer on the connection. It drains the send queue,
// pings every pingInterval, and closes the connection when the queue is
// closed or a write fails.
func (c *WSClient) WritePump(pingInterval time.Duration) {
	t := time.NewTicker(pingInterval)
	defer func() {
		t.Stop()
		_ = c.Conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-t.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// RealtimeHub fans entry events out to every connected websocket client.
// Broadcast only enqueues, so a slow client never blocks the publisher.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

// Unregister drops c and closes its queue and connection. Safe to call more
// than once.
func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
	if ok {
		// Close may run concurrently with a blocked write and unblocks it.
		_ = c.Conn.Close()
	}
}

func (h *RealtimeHub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast queues payload as one JSON text frame for each client. Clients
// whose queue is full are dropped.
func (h *RealtimeHub) Broadcast(payload any) error {
	msg, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	h.mu.RLock()
	var stalled []*WSClient
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			stalled = append(stalled, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range stalled {
		h.Unregister(c)
	}
	return nil
}
