package websocket

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/princekumarofficial/media-service/internal/types"
)

// dialSubscriber connects a websocket client to a server that registers
// every connection with h. Events are queued on the server side client
// before its pumps start.
func dialSubscriber(t *testing.T, h *Hub, queued ...*types.Event) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("Upgrade failed: %v", err)
			return
		}
		client := NewClient(conn, h)
		for _, event := range queued {
			if err := client.SendEvent(event); err != nil {
				t.Errorf("SendEvent failed: %v", err)
			}
		}
		h.RegisterClient(client)
		client.Start()
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("Failed to dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestClient_BatchesQueuedEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub()
	go h.Run(ctx)

	conn := dialSubscriber(t, h,
		types.NewEvent(types.EventMediaCreated, nil),
		types.NewEvent(types.EventMediaDeleted, types.MediaDeletedEvent{MediaID: "1"}),
	)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Failed to read: %v", err)
	}

	lines := bytes.Split(msg, []byte{'\n'})
	if len(lines) != 2 {
		t.Fatalf("Expected 2 events in one frame, got %d: %s", len(lines), msg)
	}
	want := []types.EventType{types.EventMediaCreated, types.EventMediaDeleted}
	for i, line := range lines {
		var event types.Event
		if err := json.Unmarshal(line, &event); err != nil {
			t.Fatalf("Failed to decode event %d: %v", i, err)
		}
		if event.Type != want[i] {
			t.Errorf("Event %d: expected %s, got %s", i, want[i], event.Type)
		}
	}
}

func TestClient_ClosedWhenHubStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	h := NewHub()
	go h.Run(ctx)

	conn := dialSubscriber(t, h)
	waitForClients(t, h, 1)

	cancel()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()

	var closeErr *websocket.CloseError
	if !errors.As(err, &closeErr) {
		t.Fatalf("Expected a close frame, got %v", err)
	}
	if closeErr.Code != websocket.CloseGoingAway {
		t.Fatalf("Expected close code %d, got %d", websocket.CloseGoingAway, closeErr.Code)
	}
}
