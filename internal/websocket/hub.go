package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
)

// EventType names the events exchanged over the live channel.
type EventType string

const (
	// Inbound
	TypeJoinRoom      EventType = "join_room"
	TypeLogin         EventType = "login"
	TypeStoreSocketID EventType = "store_socket_id"
	TypeMessage       EventType = "message"

	// Outbound
	TypeNotification EventType = "notification"
	TypeError        EventType = "error"
)

// Event is the wire envelope for both directions.
type Event struct {
	Type EventType       `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Hub owns every live connection, keyed by its ephemeral socket id. Delivery
// to a stale socket id is silently dropped.
type Hub struct {
	clients map[string]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub() *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)
		}
	}
}

func (h *Hub) Stop() {
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.clients {
		close(client.Send)
		client.Conn.Close()
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ID] = client
	log.Printf("Client connected: %s", client.ID)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.ID]; ok {
		delete(h.clients, client.ID)
		close(client.Send)
		log.Printf("Client disconnected: %s", client.ID)
	}
}

// EmitToSocket marshals payload into an event envelope and queues it on the
// connection with the given socket id. Best effort: unknown ids and full
// queues drop the event.
func (h *Hub) EmitToSocket(socketID string, eventType EventType, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", eventType, err)
		return
	}
	raw, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		log.Printf("Failed to marshal %s envelope: %v", eventType, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	client, ok := h.clients[socketID]
	if !ok {
		return
	}
	select {
	case client.Send <- raw:
	default:
		log.Printf("Client %s send channel full", client.ID)
	}
}
