package realtime

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Event is a message pushed to a user's open sessions.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// A user may have the planner open in several tabs or devices at once, and
// every write to the user document is a blind merge. The hub lets the
// server tell a user's other sessions that the plan changed so they can
// reload before clobbering it.
type Client struct {
	UID  string
	Conn *websocket.Conn

	// Serializes writes; the websocket connection allows one writer at a
	// time and two saves for the same user can broadcast concurrently.
	writeMu sync.Mutex
}

func (c *Client) send(msg []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(websocket.TextMessage, msg)
}

// Hub tracks open websocket sessions per uid.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	if h.clients[c.UID] == nil {
		h.clients[c.UID] = make(map[*Client]struct{})
	}
	h.clients[c.UID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if set := h.clients[c.UID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Broadcast sends the event to every open session of the given user. Write
// failures are logged and otherwise ignored; the read loop will notice the
// dead connection and unregister it.
func (h *Hub) Broadcast(uid string, event Event) {
	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("realtime: marshaling event failed: %v", err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[uid] {
		if err := c.send(msg); err != nil {
			log.Printf("realtime: write to %s failed: %v", uid, err)
		}
	}
}
