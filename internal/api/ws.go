package api

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/emrekoca/mealweek-server/internal/auth"
	"github.com/emrekoca/mealweek-server/internal/realtime"
)

// WSHandler upgrades /ws connections into the realtime hub. The browser
// websocket API cannot set headers, so the Firebase ID token travels in
// the query string.
type WSHandler struct {
	Auth *auth.Service
	Hub  *realtime.Hub
}

func NewWSHandler(authService *auth.Service, hub *realtime.Hub) *WSHandler {
	return &WSHandler{Auth: authService, Hub: hub}
}

var upgrader = websocket.Upgrader{
	// Cross-origin is handled by the token check; the Origin header alone
	// proves nothing for a websocket.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Serve handles GET /ws?token=...
func (h *WSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	token, err := h.Auth.VerifyToken(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("api: websocket upgrade for %s failed: %v", token.UID, err)
		return
	}

	client := &realtime.Client{UID: token.UID, Conn: conn}
	h.Hub.Register(client)
	defer h.Hub.Unregister(client)

	// Inbound messages are ignored; the read loop only notices the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
