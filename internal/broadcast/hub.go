// Package broadcast fans chat messages out to connected clients over
// server-sent events.
package broadcast

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Message is one chat line delivered to connected clients.
type Message struct {
	Sender string `json:"sender"`
	Room   string `json:"room"`
	Text   string `json:"text"`
}

// Hub tracks connected clients and broadcasts messages to them. Publishing
// is fire-and-forget: slow or gone clients are skipped, and the publisher
// never learns how many clients received the message.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]chan Message
}

// NewHub creates a new broadcast hub
func NewHub() *Hub {
	return &Hub{clients: make(map[string]chan Message)}
}

// Subscribe registers a client and returns its id and receive channel.
func (h *Hub) Subscribe() (string, <-chan Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.New().String()
	ch := make(chan Message, 16)
	h.clients[id] = ch
	return id, ch
}

// Unsubscribe removes a client and closes its channel.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.clients[id]; ok {
		close(ch)
		delete(h.clients, id)
	}
}

// Publish delivers msg to every connected client without blocking. A client
// whose buffer is full misses the message.
func (h *Hub) Publish(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.clients {
		select {
		case ch <- msg:
		default:
			log.Printf("Warning: dropping broadcast to slow client %s", id)
		}
	}
}
