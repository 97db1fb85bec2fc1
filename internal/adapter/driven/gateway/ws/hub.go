package ws

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/openhuddle/huddle/internal/core/domain"
	"github.com/openhuddle/huddle/internal/core/port"
)

// Hub fans session lifecycle events out to connected subscribers.
// Implements port.EventGateway.
type Hub struct {
	mu         sync.Mutex
	clients    map[port.Client]bool
	broadcast  chan domain.SessionEvent
	register   chan port.Client
	unregister chan port.Client
	quit       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[port.Client]bool),
		broadcast:  make(chan domain.SessionEvent, 64),
		register:   make(chan port.Client),
		unregister: make(chan port.Client),
		quit:       make(chan struct{}),
	}
}

// Broadcast queues ev for delivery. Never blocks the caller: when the
// channel is full the event is dropped with a warning.
func (h *Hub) Broadcast(ctx context.Context, ev domain.SessionEvent) error {
	select {
	case h.broadcast <- ev:
	default:
		log.Warn().Str("type", string(ev.Type)).Msg("Broadcast channel full, dropping event")
	}
	return nil
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.quit:
			h.mu.Lock()
			for client := range h.clients {
				client.Close()
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Info().Str("client_id", client.ID()).Msg("Subscriber registered")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
				log.Info().Str("client_id", client.ID()).Msg("Subscriber unregistered")
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				if err := client.Send(ev); err != nil {
					log.Error().Err(err).Str("client_id", client.ID()).Msg("Error sending event")
					client.Close()
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) Register(c port.Client) {
	h.register <- c
}

func (h *Hub) Unregister(c port.Client) {
	h.unregister <- c
}

func (h *Hub) Stop() {
	close(h.quit)
}
