// Package hub tracks the active realtime channel for each session.
package hub

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Connection is one WebSocket channel bound to a single session for its
// lifetime. Writes are serialized by the connection's mutex.
type Connection struct {
	SessionID string
	conn      *websocket.Conn
	mu        sync.Mutex
}

// NewConnection wraps a websocket connection for the given session.
func NewConnection(sessionID string, ws *websocket.Conn) *Connection {
	return &Connection{SessionID: sessionID, conn: ws}
}

// ReadMessage reads the next frame from the peer.
func (c *Connection) ReadMessage() (int, []byte, error) {
	return c.conn.ReadMessage()
}

// WriteJSON writes a JSON frame to the peer.
func (c *Connection) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// SetReadLimit bounds the size of inbound frames.
func (c *Connection) SetReadLimit(limit int64) {
	c.conn.SetReadLimit(limit)
}

// Close closes the underlying connection.
func (c *Connection) Close() error {
	return c.conn.Close()
}

// Hub maps session ids to their active connection. One physical channel maps
// to exactly one session; registering a new channel for a session replaces
// the previous registration.
type Hub struct {
	mu          sync.RWMutex
	connections map[string]*Connection
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{connections: make(map[string]*Connection)}
}

// Register records conn as the active channel for its session.
func (h *Hub) Register(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[conn.SessionID] = conn
}

// Unregister releases conn's registration so no further sends target it.
// A newer connection registered for the same session is left in place.
func (h *Hub) Unregister(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if current, ok := h.connections[conn.SessionID]; ok && current == conn {
		delete(h.connections, conn.SessionID)
	}
}

// Get returns the active connection for a session, if any.
func (h *Hub) Get(sessionID string) (*Connection, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	conn, ok := h.connections[sessionID]
	return conn, ok
}

// ConnectionCount returns the number of registered channels.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}
