package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	ws "github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// LiveHandler streams completed submissions to panel viewers over
// WebSocket. Authentication happens before the upgrade, in the panel
// token middleware.
type LiveHandler struct {
	hub      *ws.Hub
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewLiveHandler creates a new LiveHandler.
func NewLiveHandler(hub *ws.Hub, log zerolog.Logger, allowedOrigins []string) *LiveHandler {
	return &LiveHandler{
		hub:      hub,
		log:      log.With().Str("component", "live_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// LiveFeed godoc
// WS /ws/v1/panel/live
// Upgrades to WebSocket and pushes a submission event each time a
// respondent completes the flow. The stream is one-way; client frames are
// read only to detect disconnects.
func (h *LiveHandler) LiveFeed(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	h.hub.Register(conn)
	defer h.hub.Unregister(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn().Err(err).Msg("Unexpected close")
			} else {
				h.log.Debug().Msg("Connection closed")
			}
			return
		}
	}
}
