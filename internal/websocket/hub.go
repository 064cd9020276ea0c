package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Hub fans submission events out to every connected panel viewer. It is the
// in-process end of the live feed: events arrive either directly from the
// flow (memory mode) or via the feed worker draining the Redis queue.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	log     zerolog.Logger
}

// NewHub creates an empty Hub.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		log:     log.With().Str("component", "ws_hub").Logger(),
	}
}

// Register adds a viewer connection to the broadcast set.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	h.log.Debug().Int("viewers", n).Msg("panel viewer connected")
}

// Unregister removes a viewer connection. Closing the connection is the
// caller's responsibility.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	n := len(h.clients)
	h.mu.Unlock()
	h.log.Debug().Int("viewers", n).Msg("panel viewer disconnected")
}

// Broadcast sends the event to every connected viewer. Connections that
// fail to accept the write are dropped from the set.
func (h *Hub) Broadcast(ev SubmissionEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := WriteTyped(conn, ev); err != nil {
			h.log.Warn().Err(err).Msg("dropping stale panel viewer")
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Publish lets the Hub serve as an in-process feed publisher when no Redis
// queue is configured.
func (h *Hub) Publish(_ context.Context, ev SubmissionEvent) error {
	h.Broadcast(ev)
	return nil
}
