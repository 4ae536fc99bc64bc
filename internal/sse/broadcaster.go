package sse

import (
	"log"
	"os"
	"sync"

	"github.com/google/uuid"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// Hub fans events out to every connected SSE and websocket subscriber
type Hub struct {
	mu      sync.RWMutex
	clients map[chan Message]string // channel -> client ID
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{clients: make(map[chan Message]string)}
}

// AddClient registers a new subscriber and returns its channel and ID
func (h *Hub) AddClient() (chan Message, string) {
	client := make(chan Message, ClientBufferSize)
	id := uuid.New().String()

	h.mu.Lock()
	h.clients[client] = id
	n := len(h.clients)
	h.mu.Unlock()

	if debug {
		log.Printf("hub: client %s added, now have %d clients", id, n)
	}
	return client, id
}

// RemoveClient unregisters a subscriber
func (h *Hub) RemoveClient(client chan Message) {
	h.mu.Lock()
	id, ok := h.clients[client]
	delete(h.clients, client)
	n := len(h.clients)
	h.mu.Unlock()

	if ok {
		log.Printf("hub: client %s removed, now have %d clients", id, n)
	}
}

// Count returns the number of connected subscribers
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends a message to all subscribers. It never blocks: a
// subscriber whose buffer is full misses the message.
func (h *Hub) Broadcast(event, data string) {
	msg := Message{Event: event, Data: data}

	h.mu.RLock()
	defer h.mu.RUnlock()

	sent := 0
	for client, id := range h.clients {
		select {
		case client <- msg:
			sent++
		default:
			if debug {
				log.Printf("hub: client %s is full, dropping %s", id, event)
			}
		}
	}
	if debug {
		log.Printf("hub: event=%s sent to %d/%d clients", event, sent, len(h.clients))
	}
}
