package ws_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/health"
	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/store"
	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/telemetry"
	wsHub "github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/ws"
)

const testInterval = 20 * time.Millisecond

// --- helpers ----------------------------------------------------------------

func newStore(snaps ...telemetry.Snapshot) *store.Store {
	st := store.New(100)
	for _, s := range snaps {
		st.Put(s)
	}
	return st
}

func snap(tick int) telemetry.Snapshot {
	return telemetry.Snapshot{Tick: tick, RPM: 3000 + tick, CoolantTempC: 87}
}

// startHub starts a test HTTP server with the hub as its handler.
// The hub's Run loop is started with a cancellable context.
func startHub(t *testing.T, st *store.Store) (wsURL string, hub *wsHub.Hub) {
	t.Helper()
	return startHubAt(t, st, testInterval)
}

func startHubAt(t *testing.T, st *store.Store, interval time.Duration) (wsURL string, hub *wsHub.Hub) {
	t.Helper()

	hub = wsHub.New(st, interval)
	ctx, cancel := context.WithCancel(context.Background())

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeHTTP))
	go hub.Run(ctx)

	t.Cleanup(func() {
		cancel()
		srv.Close()
	})

	return "ws" + strings.TrimPrefix(srv.URL, "http"), hub
}

// dial connects a WebSocket client to wsURL and returns the connection.
func dial(t *testing.T, wsURL string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", wsURL, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// readMessage reads one message with a deadline and decodes it.
func readMessage(t *testing.T, conn *websocket.Conn) wsHub.Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read message: %v", err)
	}
	var msg wsHub.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("decode message: %v", err)
	}
	return msg
}

// --- tests ------------------------------------------------------------------

func TestHub_SendsSnapshotOnConnect(t *testing.T) {
	st := newStore(snap(7))
	st.SetReport(health.Report{Overall: 92, State: health.StateHealthy})
	url, _ := startHub(t, st)

	conn := dial(t, url)
	msg := readMessage(t, conn)

	if msg.Event != "telemetry" {
		t.Errorf("Event = %q, want telemetry", msg.Event)
	}
	if msg.Data.Snapshot == nil || msg.Data.Snapshot.Tick != 7 {
		t.Errorf("Snapshot = %+v, want tick 7", msg.Data.Snapshot)
	}
	if msg.Data.Health == nil || msg.Data.Health.State != health.StateHealthy {
		t.Errorf("Health = %+v, want healthy report", msg.Data.Health)
	}
}

func TestHub_BroadcastsUpdates(t *testing.T) {
	st := newStore(snap(0))
	url, _ := startHub(t, st)

	conn := dial(t, url)
	readMessage(t, conn) // connect-time message

	st.Put(snap(1))

	// The next broadcast tick must carry the new reading.
	deadline := time.Now().Add(2 * time.Second)
	for {
		msg := readMessage(t, conn)
		if msg.Data.Snapshot != nil && msg.Data.Snapshot.Tick == 1 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("never received the updated snapshot")
		}
	}
}

func TestHub_CountTracksClients(t *testing.T) {
	st := newStore(snap(0))
	url, hub := startHub(t, st)

	if n := hub.Count(); n != 0 {
		t.Fatalf("initial Count = %d, want 0", n)
	}

	conn := dial(t, url)
	readMessage(t, conn)

	if n := hub.Count(); n != 1 {
		t.Errorf("Count after connect = %d, want 1", n)
	}

	conn.Close()
	waitFor(t, func() bool { return hub.Count() == 0 })
}

func TestHub_EmptyStorePayload(t *testing.T) {
	url, _ := startHub(t, store.New(10))

	conn := dial(t, url)
	msg := readMessage(t, conn)

	if msg.Data.Snapshot != nil {
		t.Errorf("Snapshot = %+v, want nil for empty store", msg.Data.Snapshot)
	}
}

func TestHub_ClientChurnDuringBroadcasts(t *testing.T) {
	// Clients connecting and dropping while the hub broadcasts at full tilt
	// must never race a send against a closing channel. A panic in any hub
	// goroutine fails the run.
	st := newStore(snap(0))
	url, hub := startHubAt(t, st, time.Millisecond)

	for i := 1; i <= 50; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			t.Fatalf("dial #%d: %v", i, err)
		}
		st.Put(snap(i))
		conn.Close()
	}

	waitFor(t, func() bool { return hub.Count() == 0 })
}

// waitFor polls cond until it is true or the deadline expires.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}
