package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
)

// Event is one entry of the back-office activity feed.
type Event struct {
	Kind     string      `json:"kind"`   // e.g. "transaction_created", "product_updated"
	Entity   string      `json:"entity"` // entity family
	Payload  interface{} `json:"payload,omitempty"`
	Occurred time.Time   `json:"occurred_at"`
}

// Hub fans activity events out to connected websocket clients.
type Hub struct {
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	events     chan Event

	mutex   sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		events:     make(chan Event, 64),
		clients:    make(map[*websocket.Conn]bool),
	}
}

// Publish queues an event without blocking the caller; the feed is
// best-effort and drops events when the buffer is full.
func (h *Hub) Publish(kind, entity string, payload interface{}) {
	select {
	case h.events <- Event{Kind: kind, Entity: entity, Payload: payload, Occurred: time.Now()}:
	default:
		slog.Warn("activity feed buffer full, dropping event", "kind", kind)
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.clients[conn] = true
			h.mutex.Unlock()

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case event := <-h.events:
			msg, err := json.Marshal(event)
			if err != nil {
				continue
			}
			h.mutex.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}
