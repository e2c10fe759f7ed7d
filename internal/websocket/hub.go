package websocket

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// MessageType represents the type of WebSocket message
type MessageType string

const (
	MessageTypeSeatsUpdated    MessageType = "seats_updated"
	MessageTypeSeatAssigned    MessageType = "seat_assigned"
	MessageTypeFlightCancelled MessageType = "flight_cancelled"
)

// Message is a seat-inventory event pushed to clients watching a flight
type Message struct {
	Type         MessageType `json:"type"`
	Flightnumber string      `json:"flightnumber"`
	Seatcode     string      `json:"seatcode,omitempty"`
	Message      string      `json:"message,omitempty"`
	Timestamp    int64       `json:"timestamp"`
}

// Client represents a WebSocket client connection watching one flight
type Client struct {
	id           uuid.UUID
	hub          *Hub
	conn         *websocket.Conn
	send         chan []byte
	flightnumber string
}

// Hub manages WebSocket connections per flightnumber
type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
	log        *zap.Logger
	mu         sync.RWMutex
}

// NewHub creates a new Hub; the caller must start Run in a goroutine
func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
		log:        log,
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.flightnumber] == nil {
				h.clients[client.flightnumber] = make(map[*Client]bool)
			}
			h.clients[client.flightnumber][client] = true
			h.mu.Unlock()
			h.log.Debug("websocket client registered",
				zap.String("flightnumber", client.flightnumber),
				zap.String("client", client.id.String()))

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.flightnumber]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.clients, client.flightnumber)
					}
				}
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			data, err := json.Marshal(message)
			if err != nil {
				h.log.Error("failed to marshal broadcast", zap.Error(err))
				continue
			}

			h.mu.RLock()
			clients := h.clients[message.Flightnumber]
			h.mu.RUnlock()

			for client := range clients {
				select {
				case client.send <- data:
				default:
					h.mu.Lock()
					delete(h.clients[message.Flightnumber], client)
					close(client.send)
					if len(h.clients[message.Flightnumber]) == 0 {
						delete(h.clients, message.Flightnumber)
					}
					h.mu.Unlock()
				}
			}
		}
	}
}

// BroadcastSeatsUpdated tells clients to refetch the flight's seat inventory
func (h *Hub) BroadcastSeatsUpdated(flightnumber string) {
	h.broadcast <- &Message{
		Type:         MessageTypeSeatsUpdated,
		Flightnumber: flightnumber,
		Timestamp:    time.Now().UnixMilli(),
	}
}

// BroadcastSeatAssigned announces that a seat was claimed by a ticket
func (h *Hub) BroadcastSeatAssigned(flightnumber, seatcode string) {
	h.broadcast <- &Message{
		Type:         MessageTypeSeatAssigned,
		Flightnumber: flightnumber,
		Seatcode:     seatcode,
		Timestamp:    time.Now().UnixMilli(),
	}
}

// BroadcastFlightCancelled announces the cancellation of a flight
func (h *Hub) BroadcastFlightCancelled(flightnumber string) {
	h.broadcast <- &Message{
		Type:         MessageTypeFlightCancelled,
		Flightnumber: flightnumber,
		Message:      "The flight " + flightnumber + " was canceled",
		Timestamp:    time.Now().UnixMilli(),
	}
}

// ClientCount returns the number of clients watching a flight
func (h *Hub) ClientCount(flightnumber string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[flightnumber])
}

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handle upgrades the request and subscribes the client to the flight's
// seat events
func (h *Hub) Handle(w http.ResponseWriter, r *http.Request) {
	flightnumber := mux.Vars(r)["flightnumber"]

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		id:           uuid.New(),
		hub:          h,
		conn:         conn,
		send:         make(chan []byte, 16),
		flightnumber: flightnumber,
	}
	h.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump discards inbound frames; the stream is one-directional
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
