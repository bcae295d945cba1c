package websocket

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	wsClient "github.com/princekumarofficial/media-service/internal/websocket"
)

// NewUpgrader accepts connections from the given origins, and from clients
// that send no Origin header at all.
func NewUpgrader(allowedOrigins []string) *websocket.Upgrader {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[strings.TrimRight(origin, "/")] = struct{}{}
	}

	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			_, ok := allowed[origin]
			return ok
		},
	}
}

// Events streams media change events to the connected client
// @Summary Subscribe to media events
// @Description Upgrade to a WebSocket that receives media.created, media.updated and media.deleted events
// @Tags events
// @Success 101 "Switching Protocols"
// @Failure 400 "Not a WebSocket handshake"
// @Router /events [get]
func Events(hub *wsClient.Hub, upgrader *websocket.Upgrader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Upgrade writes its own error response on failure
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Warn("Failed to upgrade WebSocket connection", slog.String("error", err.Error()))
			return
		}

		client := wsClient.NewClient(conn, hub)
		if !hub.RegisterClient(client) {
			conn.Close()
			return
		}

		client.Start()

		slog.Info("WebSocket connection established", slog.String("client_id", client.ID()))
	}
}
