// Package liveserver is an ambient External I/O component: it broadcasts a
// JSON snapshot of the simulation's channels to connected WebSocket viewers
// after each step. The simulation never imports this package; cmd/meandersim
// wires them together. Grounded on the teacher's server.go (the upgrader,
// the per-connection mutex map, the JSON frame struct, serving over
// net/http).
package liveserver

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"meanderflow/internal/field"
	"meanderflow/internal/vecmath"
)

// ChannelFrame is one broadcast JSON payload: every channel's vertices and
// the domain they live in, plus the step count they were captured at.
type ChannelFrame struct {
	Step     int           `json:"step"`
	Box      [2][2]float64 `json:"box"`
	Channels [][]float64   `json:"channels"` // flattened [x0,y0,x1,y1,...] per channel
}

// NewFrame builds a ChannelFrame from a step count, domain and channel point
// sequences.
func NewFrame(step int, box field.Box2D, channels [][]vecmath.Vector2) ChannelFrame {
	flat := make([][]float64, len(channels))
	for i, points := range channels {
		row := make([]float64, 0, len(points)*2)
		for _, p := range points {
			row = append(row, p.X, p.Y)
		}
		flat[i] = row
	}
	return ChannelFrame{
		Step:     step,
		Box:      [2][2]float64{{box.Min.X, box.Min.Y}, {box.Max.X, box.Max.Y}},
		Channels: flat,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server accepts WebSocket viewers on /ws and rebroadcasts whatever frame is
// passed to Broadcast to all of them.
type Server struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]*sync.Mutex
}

// NewServer builds an empty Server.
func NewServer() *Server {
	return &Server{clients: make(map[*websocket.Conn]*sync.Mutex)}
}

// Handler returns the /ws HTTP handler.
func (s *Server) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		s.mu.Lock()
		s.clients[conn] = &sync.Mutex{}
		s.mu.Unlock()
	}
}

// Broadcast sends frame to every connected client, dropping any connection
// that errors.
func (s *Server) Broadcast(frame ChannelFrame) {
	payload, err := json.Marshal(frame)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn, writeMu := range s.clients {
		writeMu.Lock()
		err := conn.WriteMessage(websocket.TextMessage, payload)
		writeMu.Unlock()
		if err != nil {
			conn.Close()
			delete(s.clients, conn)
		}
	}
}
