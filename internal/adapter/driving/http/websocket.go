package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/openhuddle/huddle/internal/core/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The event feed is a same-origin demo surface.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSClient is one websocket subscriber on the event feed.
// Implements port.Client.
type WSClient struct {
	id   string
	conn *websocket.Conn
}

func (c *WSClient) ID() string {
	return c.id
}

func (c *WSClient) Send(ev domain.SessionEvent) error {
	return c.conn.WriteJSON(ev)
}

func (c *WSClient) Close() error {
	return c.conn.Close()
}

// ServeEvents upgrades the connection and streams session lifecycle events
// until the subscriber goes away. Incoming frames are discarded.
func (h *Handler) ServeEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Error while upgrading ws")
		return
	}

	client := &WSClient{
		id:   uuid.NewString(),
		conn: conn,
	}

	l := log.With().Str("client_id", client.id).Logger()
	l.Info().Msg("Event subscriber connected")

	h.hub.Register(client)

	defer func() {
		l.Info().Msg("Event subscriber disconnected")
		h.hub.Unregister(client)
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				l.Error().Err(err).Msg("Unexpected close error")
			}
			return
		}
	}
}
