package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MohammadaminAlbooyeh/diet-diary/models"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hubServer registers every upgraded connection with hub and keeps it open
// until the client goes away.
func hubServer(t *testing.T, hub *RealtimeHub) *httptest.Server {
	t.Helper()
	up := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		cl := NewWSClient(conn)
		hub.Register(cl)
		go cl.WritePump(time.Minute)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.Unregister(cl)
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	return conn
}

func TestEventBusBroadcastsToAllClients(t *testing.T) {
	hub := NewRealtimeHub()
	srv := hubServer(t, hub)

	a, b := dial(t, srv), dial(t, srv)
	defer a.Close()
	defer b.Close()
	require.Eventually(t, func() bool { return hub.Count() == 2 }, 2*time.Second, 10*time.Millisecond)

	NewEventBus(hub).Publish(EntryEvent{
		Kind:  EventEntryDeleted,
		Entry: models.CalorieEntry{ID: 7, FoodName: "rice", Calories: 130},
	})

	for _, c := range []*websocket.Conn{a, b} {
		require.NoError(t, c.SetReadDeadline(time.Now().Add(2*time.Second)))
		var ev EntryEvent
		require.NoError(t, c.ReadJSON(&ev))
		assert.Equal(t, EventEntryDeleted, ev.Kind)
		assert.Equal(t, uint(7), ev.Entry.ID)
	}
}

func TestHubUnregisterOnClose(t *testing.T) {
	hub := NewRealtimeHub()
	srv := hubServer(t, hub)

	c := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, c.Close())
	require.Eventually(t, func() bool { return hub.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestBroadcastDoesNotBlockOnStalledClient(t *testing.T) {
	hub := NewRealtimeHub()
	srv := hubServer(t, hub)

	// dialled but never read from
	stalled := dial(t, srv)
	defer stalled.Close()
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	bus := NewEventBus(hub)
	big := strings.Repeat("x", 1<<20)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			bus.Publish(EntryEvent{
				Kind:  EventEntryCreated,
				Entry: models.CalorieEntry{ID: uint(i + 1), FoodName: big, Calories: 1},
			})
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("publishing blocked behind a client that stopped reading")
	}
	require.Eventually(t, func() bool { return hub.Count() == 0 }, 2*time.Second, 10*time.Millisecond)

	// a fresh client still gets events afterwards
	fresh := dial(t, srv)
	defer fresh.Close()
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	bus.Publish(EntryEvent{Kind: EventEntryCreated, Entry: models.CalorieEntry{ID: 999, FoodName: "egg", Calories: 78}})
	require.NoError(t, fresh.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev EntryEvent
	require.NoError(t, fresh.ReadJSON(&ev))
	assert.Equal(t, uint(999), ev.Entry.ID)
}

func TestUnregisterTwiceIsSafe(t *testing.T) {
	hub := NewRealtimeHub()
	srv := hubServer(t, hub)

	c := dial(t, srv)
	defer c.Close()
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.mu.RLock()
	var cl *WSClient
	for k := range hub.clients {
		cl = k
	}
	hub.mu.RUnlock()

	hub.Unregister(cl)
	hub.Unregister(cl)
	assert.Equal(t, 0, hub.Count())
}

func TestNilEventBusIsNoop(t *testing.T) {
	var bus *EventBus
	bus.Publish(EntryEvent{Kind: EventEntryCreated})
	NewEventBus(nil).Publish(EntryEvent{Kind: EventEntryCreated})
}
