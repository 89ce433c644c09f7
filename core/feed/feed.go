// Package feed broadcasts orchestration events to WebSocket spectators. Each
// event is wrapped in a small JSON envelope carrying its kind and timestamp,
// so external displays (stage screens, overlays, dashboards) can follow a
// session without being wired into the scheduler.
package feed

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/koscakluka/dialogue-core/core/events"
)

const clientSendBuffer = 64

// Envelope is the wire form of one orchestration event.
type Envelope struct {
	Kind      events.Kind  `json:"kind"`
	Timestamp time.Time    `json:"timestamp"`
	Event     events.Event `json:"event"`
}

// Broadcaster fans orchestration events out to connected WebSocket clients.
// Publish never blocks; a client that cannot keep up is dropped.
type Broadcaster struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: map[*client]struct{}{},
	}
}

// ServeHTTP upgrades the request and streams events until the client
// disconnects or the broadcaster closes.
func (b *Broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.WarnContext(r.Context(), "failed to upgrade spectator connection", "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, clientSendBuffer)}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		conn.Close()
		return
	}
	b.clients[c] = struct{}{}
	b.mu.Unlock()

	go b.writePump(c)
	b.readPump(c)
}

// Publish encodes the event and queues it for every connected client. It is
// safe to use directly as an event callback.
func (b *Broadcaster) Publish(event events.Event) {
	payload, err := json.Marshal(Envelope{
		Kind:      event.Kind(),
		Timestamp: event.Timestamp(),
		Event:     event,
	})
	if err != nil {
		logger.Warn("failed to encode event for broadcast", "kind", event.Kind(), "error", err)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for c := range b.clients {
		select {
		case c.send <- payload:
		default:
			// the client stopped draining; drop it rather than stall the
			// session
			delete(b.clients, c)
			close(c.send)
		}
	}
}

// Close disconnects every client. The broadcaster accepts no new connections
// afterwards.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for c := range b.clients {
		delete(b.clients, c)
		close(c.send)
	}
}

// ClientCount reports the number of currently connected clients.
func (b *Broadcaster) ClientCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}

func (b *Broadcaster) writePump(c *client) {
	defer c.conn.Close()

	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			b.drop(c)
			return
		}
	}

	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// readPump drains and discards client frames; the feed is one-way. It is
// also how disconnects are noticed.
func (b *Broadcaster) readPump(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			b.drop(c)
			return
		}
	}
}

func (b *Broadcaster) drop(c *client) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.clients[c]; ok {
		delete(b.clients, c)
		close(c.send)
	}
}
