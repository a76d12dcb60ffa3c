// Package stream pushes terrain meshes to browser viewers over websockets.
package stream

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/chazu/strata/pkg/kernel"
)

// MeshData is the JSON message sent to clients after every upload.
type MeshData struct {
	Type     string    `json:"type"`
	Sequence uint64    `json:"sequence"`
	Vertices []float32 `json:"vertices"`
	Colors   []float32 `json:"colors"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
}

// DefaultWriteTimeout bounds each write to a client. A client that cannot
// take a mesh within it is dropped.
const DefaultWriteTimeout = 10 * time.Second

// client serializes writes to one connection. seq is the last sequence
// sent, so a client never receives a mesh older than one it already has.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
	seq  uint64
}

// send writes msg unless the client already has it or something newer.
func (c *client) send(msg *MeshData, timeout time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if msg.Sequence <= c.seq {
		return nil
	}
	c.conn.SetWriteDeadline(time.Now().Add(timeout))
	if err := c.conn.WriteJSON(msg); err != nil {
		return err
	}
	c.seq = msg.Sequence
	return nil
}

// Hub is a kernel.Sink that broadcasts each uploaded mesh to every
// connected websocket client. Clients that connect later receive the most
// recent mesh on arrival.
type Hub struct {
	upgrader     websocket.Upgrader
	logger       *log.Logger
	writeTimeout time.Duration

	mu      sync.Mutex // guards pending, last and seq
	pending MeshData
	last    *MeshData
	seq     uint64

	clientsMu sync.RWMutex
	clients   map[*websocket.Conn]*client
}

// Compile-time interface checks.
var (
	_ kernel.Sink  = (*Hub)(nil)
	_ http.Handler = (*Hub)(nil)
)

// NewHub creates a hub. A nil logger uses log.Default().
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger:       logger,
		writeTimeout: DefaultWriteTimeout,
		clients:      make(map[*websocket.Conn]*client),
	}
}

func (h *Hub) SetPositions(xyz []float32) { h.set(func(m *MeshData) { m.Vertices = xyz }) }
func (h *Hub) SetColors(rgb []float32)    { h.set(func(m *MeshData) { m.Colors = rgb }) }
func (h *Hub) SetNormals(xyz []float32)   { h.set(func(m *MeshData) { m.Normals = xyz }) }

// SetIndices completes an upload and broadcasts it.
func (h *Hub) SetIndices(indices []uint32) {
	h.mu.Lock()
	h.seq++
	msg := h.pending
	msg.Type = "mesh"
	msg.Sequence = h.seq
	msg.Indices = indices
	h.last = &msg
	h.pending = MeshData{}
	h.mu.Unlock()

	h.broadcast(&msg)
}

func (h *Hub) set(fn func(*MeshData)) {
	h.mu.Lock()
	fn(&h.pending)
	h.mu.Unlock()
}

// Last returns the most recent mesh, or nil before the first upload.
func (h *Hub) Last() *MeshData {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request and keeps the connection registered
// until the client goes away. Incoming messages are ignored.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("stream: upgrade: %v", err)
		return
	}

	// Hold the client's lock from registration until the replay is out, so
	// a concurrent broadcast queues behind it.
	c := &client{conn: conn}
	c.mu.Lock()
	h.clientsMu.Lock()
	h.clients[conn] = c
	h.clientsMu.Unlock()
	if last := h.Last(); last != nil {
		conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
		if err = conn.WriteJSON(last); err == nil {
			c.seq = last.Sequence
		}
	}
	c.mu.Unlock()
	if err != nil {
		h.logger.Printf("stream: replay: %v", err)
		h.drop(conn)
		return
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.drop(conn)
}

func (h *Hub) broadcast(msg *MeshData) {
	h.clientsMu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	for _, c := range clients {
		if err := c.send(msg, h.writeTimeout); err != nil {
			h.logger.Printf("stream: write: %v", err)
			h.drop(c.conn)
		}
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.clientsMu.Lock()
	delete(h.clients, conn)
	h.clientsMu.Unlock()
	conn.Close()
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.clientsMu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.clients = make(map[*websocket.Conn]*client)
	h.clientsMu.Unlock()

	for _, conn := range conns {
		conn.Close()
	}
}

// MeshHandler serves the most recent mesh as JSON, for clients that poll.
func (h *Hub) MeshHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last := h.Last()
		if last == nil {
			http.Error(w, "no mesh yet", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(last); err != nil {
			h.logger.Printf("stream: encode: %v", err)
		}
	})
}
