package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialHub spins up a websocket endpoint that registers every connection
// under the given uid and returns the client side of one connection.
func dialHub(t *testing.T, hub *Hub, uid string) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(&Client{UID: uid, Conn: conn})
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// The server handler registers after the handshake; wait for it.
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.clients[uid]) == 1
	}, time.Second, 5*time.Millisecond)
	return conn
}

func TestBroadcastDeliversToUserSessions(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub, "u1")

	hub.Broadcast("u1", Event{Type: "plan.saved"})

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"plan.saved"}`, string(msg))
}

func TestBroadcastToUnknownUserIsNoOp(t *testing.T) {
	hub := NewHub()
	hub.Broadcast("nobody", Event{Type: "plan.saved"})
}

func TestConcurrentBroadcastsShareOneConnection(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub, "u1")

	// Two saves for the same user can land at once; their broadcasts must
	// serialize on the connection instead of writing concurrently.
	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.Broadcast("u1", Event{Type: "plan.saved"})
		}()
	}
	wg.Wait()

	conn.SetReadDeadline(time.Now().Add(time.Second))
	for i := 0; i < n; i++ {
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"plan.saved"}`, string(msg))
	}
}

func TestUnregisterDropsSession(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub, "u1")

	hub.mu.RLock()
	var client *Client
	for c := range hub.clients["u1"] {
		client = c
	}
	hub.mu.RUnlock()
	require.NotNil(t, client)

	hub.Unregister(client)

	hub.mu.RLock()
	_, ok := hub.clients["u1"]
	hub.mu.RUnlock()
	assert.False(t, ok)

	// The server side closed the connection; the client read fails.
	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}
