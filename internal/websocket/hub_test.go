package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(h *Hub, flightnumber string, buffer int) *Client {
	return &Client{
		id:           uuid.New(),
		hub:          h,
		send:         make(chan []byte, buffer),
		flightnumber: flightnumber,
	}
}

func recvMessage(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case data, ok := <-c.send:
		require.True(t, ok, "send channel closed")
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
		return Message{}
	}
}

func TestHub_RegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	client := newTestClient(hub, "AB12C3", 16)
	hub.register <- client
	assert.Eventually(t, func() bool {
		return hub.ClientCount("AB12C3") == 1
	}, time.Second, 10*time.Millisecond)

	hub.BroadcastSeatAssigned("AB12C3", "X7K9Q2M-A1")

	msg := recvMessage(t, client)
	assert.Equal(t, MessageTypeSeatAssigned, msg.Type)
	assert.Equal(t, "AB12C3", msg.Flightnumber)
	assert.Equal(t, "X7K9Q2M-A1", msg.Seatcode)
	assert.NotZero(t, msg.Timestamp)

	hub.unregister <- client
	assert.Eventually(t, func() bool {
		return hub.ClientCount("AB12C3") == 0
	}, time.Second, 10*time.Millisecond)

	// Unregistering closes the client's send channel
	_, ok := <-client.send
	assert.False(t, ok)
}

func TestHub_BroadcastsPerFlight(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	watching := newTestClient(hub, "AB12C3", 16)
	other := newTestClient(hub, "ZZ9ZZ9", 16)
	hub.register <- watching
	hub.register <- other
	assert.Eventually(t, func() bool {
		return hub.ClientCount("AB12C3") == 1 && hub.ClientCount("ZZ9ZZ9") == 1
	}, time.Second, 10*time.Millisecond)

	hub.BroadcastFlightCancelled("AB12C3")

	msg := recvMessage(t, watching)
	assert.Equal(t, MessageTypeFlightCancelled, msg.Type)
	assert.Contains(t, msg.Message, "AB12C3")

	// The broadcast was fully processed once the watcher received it; the
	// other flight's client saw nothing.
	assert.Empty(t, other.send)
}

func TestHub_EvictsSlowClient(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	// A one-slot buffer fills on the first broadcast; the second one cannot
	// be delivered and evicts the client.
	client := newTestClient(hub, "AB12C3", 1)
	hub.register <- client
	assert.Eventually(t, func() bool {
		return hub.ClientCount("AB12C3") == 1
	}, time.Second, 10*time.Millisecond)

	hub.BroadcastSeatsUpdated("AB12C3")
	hub.BroadcastSeatsUpdated("AB12C3")

	assert.Eventually(t, func() bool {
		return hub.ClientCount("AB12C3") == 0
	}, time.Second, 10*time.Millisecond)

	// Eviction drops the emptied flight entry just like unregister does
	hub.mu.RLock()
	_, ok := hub.clients["AB12C3"]
	hub.mu.RUnlock()
	assert.False(t, ok)
}
